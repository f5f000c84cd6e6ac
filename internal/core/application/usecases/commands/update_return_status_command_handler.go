package commands

import (
	"context"
)

// UpdateReturnStatusCommandHandler applies a return status. Refunded settles the order
// as Returned, Rejected puts it back to Delivered.
type UpdateReturnStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateReturnStatusCommandHandler creates an UpdateReturnStatusCommandHandler.
func NewUpdateReturnStatusCommandHandler(uowFactory OrderUoWFactory) UpdateReturnStatusCommandHandler {
	return UpdateReturnStatusCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrInvalidStateTransition (cause order.ErrNoReturnInProgress)
// when no return was requested.
func (h UpdateReturnStatusCommandHandler) Handle(ctx context.Context, cmd UpdateReturnStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.UpdateReturnStatus(cmd.ReturnStatus()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
