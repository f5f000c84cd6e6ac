package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkPackagePreparingCommandIsNotConstructed = errors.New(
	"MarkPackagePreparingCommand must be created via NewMarkPackagePreparingCommand constructor",
)

// MarkPackagePreparingCommand records that an admin started packing.
type MarkPackagePreparingCommand struct {
	packageID kernel.UUID
	adminID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPackagePreparingCommand creates a MarkPackagePreparingCommand.
func NewMarkPackagePreparingCommand(packageID, adminID kernel.UUID) (MarkPackagePreparingCommand, error) {
	var adminErr error
	if err := adminID.Validate(); err != nil {
		adminErr = errs.NewValueIsRequiredErrorWithCause("adminId", err)
	}
	if err := errors.Join(packageID.Validate(), adminErr); err != nil {
		return MarkPackagePreparingCommand{}, err
	}

	return MarkPackagePreparingCommand{
		packageID: packageID,
		adminID:   adminID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPackagePreparingCommand) Validate() error {
	return c.guard.Validate(ErrMarkPackagePreparingCommandIsNotConstructed)
}

func (c MarkPackagePreparingCommand) PackageID() kernel.UUID { return c.packageID }
func (c MarkPackagePreparingCommand) AdminID() kernel.UUID   { return c.adminID }
