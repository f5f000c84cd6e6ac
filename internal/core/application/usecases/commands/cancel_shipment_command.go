package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand voids the label of a package that has not shipped yet.
type CancelShipmentCommand struct {
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a CancelShipmentCommand.
func NewCancelShipmentCommand(packageID kernel.UUID) (CancelShipmentCommand, error) {
	if err := packageID.Validate(); err != nil {
		return CancelShipmentCommand{}, err
	}

	return CancelShipmentCommand{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

func (c CancelShipmentCommand) PackageID() kernel.UUID { return c.packageID }
