package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkPackageExceptionCommandIsNotConstructed = errors.New(
	"MarkPackageExceptionCommand must be created via NewMarkPackageExceptionCommand constructor",
)

// MarkPackageExceptionCommand flags a carrier problem on a shipped package.
type MarkPackageExceptionCommand struct {
	packageID kernel.UUID
	note      string

	guard guard.ConstructorGuard
}

// NewMarkPackageExceptionCommand requires a note describing the problem.
func NewMarkPackageExceptionCommand(packageID kernel.UUID, note string) (MarkPackageExceptionCommand, error) {
	note = strings.TrimSpace(note)
	if err := errors.Join(packageID.Validate(), requireNote(note)); err != nil {
		return MarkPackageExceptionCommand{}, err
	}

	return MarkPackageExceptionCommand{
		packageID: packageID,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPackageExceptionCommand) Validate() error {
	return c.guard.Validate(ErrMarkPackageExceptionCommandIsNotConstructed)
}

func (c MarkPackageExceptionCommand) PackageID() kernel.UUID { return c.packageID }
func (c MarkPackageExceptionCommand) Note() string           { return c.note }

func requireNote(note string) error {
	if note == "" {
		return errs.NewValueIsRequiredError("note")
	}
	return nil
}
