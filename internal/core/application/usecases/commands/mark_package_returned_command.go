package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkPackageReturnedCommandIsNotConstructed = errors.New(
	"MarkPackageReturnedCommand must be created via NewMarkPackageReturnedCommand constructor",
)

// MarkPackageReturnedCommand records that the carrier brought a package back.
type MarkPackageReturnedCommand struct {
	packageID kernel.UUID
	note      string

	guard guard.ConstructorGuard
}

// NewMarkPackageReturnedCommand creates a MarkPackageReturnedCommand. The note is optional.
func NewMarkPackageReturnedCommand(packageID kernel.UUID, note string) (MarkPackageReturnedCommand, error) {
	if err := packageID.Validate(); err != nil {
		return MarkPackageReturnedCommand{}, err
	}

	return MarkPackageReturnedCommand{
		packageID: packageID,
		note:      strings.TrimSpace(note),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPackageReturnedCommand) Validate() error {
	return c.guard.Validate(ErrMarkPackageReturnedCommandIsNotConstructed)
}

func (c MarkPackageReturnedCommand) PackageID() kernel.UUID { return c.packageID }
func (c MarkPackageReturnedCommand) Note() string           { return c.note }
