package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkPackageShippedCommandIsNotConstructed = errors.New(
	"MarkPackageShippedCommand must be created via NewMarkPackageShippedCommand constructor",
)

// MarkPackageShippedCommand hands a labelled package to its carrier.
type MarkPackageShippedCommand struct {
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPackageShippedCommand creates a MarkPackageShippedCommand.
func NewMarkPackageShippedCommand(packageID kernel.UUID) (MarkPackageShippedCommand, error) {
	if err := packageID.Validate(); err != nil {
		return MarkPackageShippedCommand{}, err
	}

	return MarkPackageShippedCommand{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPackageShippedCommand) Validate() error {
	return c.guard.Validate(ErrMarkPackageShippedCommandIsNotConstructed)
}

func (c MarkPackageShippedCommand) PackageID() kernel.UUID { return c.packageID }
