package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand opens fulfillment for an order.
//
// Example:
//
//	dims, _ := kernel.NewDimensions(1.2, 30, 20, 10)
//	cmd, err := NewCreatePackageCommand(kernel.NewUUID(), orderID, dims, carrier.PickupPoint, "KRA01M")
type CreatePackageCommand struct {
	packageID     kernel.UUID
	orderID       kernel.UUID
	dimensions    kernel.Dimensions
	carrier       carrier.Type
	pickupPointID string

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand validates identifiers, dimensions and the carrier name.
// Whether the carrier is integrated is checked by the handler.
func NewCreatePackageCommand(
	packageID, orderID kernel.UUID,
	dimensions kernel.Dimensions,
	carrierType carrier.Type,
	pickupPointID string,
) (CreatePackageCommand, error) {
	var carrierErr error
	if strings.TrimSpace(carrierType.String()) == "" {
		carrierErr = errs.NewValueIsRequiredError("carrier")
	}

	if err := errors.Join(
		packageID.Validate(),
		orderID.Validate(),
		dimensions.Validate(),
		carrierErr,
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return CreatePackageCommand{
		packageID:     packageID,
		orderID:       orderID,
		dimensions:    dimensions,
		carrier:       carrierType,
		pickupPointID: strings.TrimSpace(pickupPointID),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

func (c CreatePackageCommand) PackageID() kernel.UUID        { return c.packageID }
func (c CreatePackageCommand) OrderID() kernel.UUID          { return c.orderID }
func (c CreatePackageCommand) Dimensions() kernel.Dimensions { return c.dimensions }
func (c CreatePackageCommand) Carrier() carrier.Type         { return c.carrier }
func (c CreatePackageCommand) PickupPointID() string         { return c.pickupPointID }
