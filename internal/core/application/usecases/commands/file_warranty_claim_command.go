package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrFileWarrantyClaimCommandIsNotConstructed = errors.New(
	"FileWarrantyClaimCommand must be created via NewFileWarrantyClaimCommand constructor",
)

// FileWarrantyClaimCommand is a customer reporting a defect in a purchased product.
type FileWarrantyClaimCommand struct {
	claimID     kernel.UUID
	actor       kernel.Actor
	orderID     kernel.UUID
	productID   kernel.UUID
	description string
	photos      []string

	guard guard.ConstructorGuard
}

// NewFileWarrantyClaimCommand requires a description; photos are optional URLs.
func NewFileWarrantyClaimCommand(
	claimID kernel.UUID,
	actor kernel.Actor,
	orderID, productID kernel.UUID,
	description string,
	photos []string,
) (FileWarrantyClaimCommand, error) {
	var descErr error
	description = strings.TrimSpace(description)
	if description == "" {
		descErr = errs.NewValueIsRequiredError("issueDescription")
	}

	if err := errors.Join(
		claimID.Validate(),
		requireActor(actor),
		orderID.Validate(),
		productID.Validate(),
		descErr,
	); err != nil {
		return FileWarrantyClaimCommand{}, err
	}

	return FileWarrantyClaimCommand{
		claimID:     claimID,
		actor:       actor,
		orderID:     orderID,
		productID:   productID,
		description: description,
		photos:      append([]string(nil), photos...),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FileWarrantyClaimCommand) Validate() error {
	return c.guard.Validate(ErrFileWarrantyClaimCommandIsNotConstructed)
}

func (c FileWarrantyClaimCommand) ClaimID() kernel.UUID   { return c.claimID }
func (c FileWarrantyClaimCommand) Actor() kernel.Actor    { return c.actor }
func (c FileWarrantyClaimCommand) OrderID() kernel.UUID   { return c.orderID }
func (c FileWarrantyClaimCommand) ProductID() kernel.UUID { return c.productID }
func (c FileWarrantyClaimCommand) Description() string    { return c.description }
func (c FileWarrantyClaimCommand) Photos() []string       { return append([]string(nil), c.photos...) }
