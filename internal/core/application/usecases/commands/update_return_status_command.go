package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateReturnStatusCommandIsNotConstructed = errors.New(
	"UpdateReturnStatusCommand must be created via NewUpdateReturnStatusCommand constructor",
)

// UpdateReturnStatusCommand records admin progress on an open return.
type UpdateReturnStatusCommand struct {
	orderID      kernel.UUID
	returnStatus order.ReturnStatus

	guard guard.ConstructorGuard
}

// NewUpdateReturnStatusCommand creates a command to move the order's return to returnStatus.
func NewUpdateReturnStatusCommand(orderID kernel.UUID, returnStatus order.ReturnStatus) (UpdateReturnStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), returnStatus.Validate()); err != nil {
		return UpdateReturnStatusCommand{}, err
	}

	return UpdateReturnStatusCommand{
		orderID:      orderID,
		returnStatus: returnStatus,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReturnStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReturnStatusCommandIsNotConstructed)
}

func (c UpdateReturnStatusCommand) OrderID() kernel.UUID             { return c.orderID }
func (c UpdateReturnStatusCommand) ReturnStatus() order.ReturnStatus { return c.returnStatus }
