package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// SetOrderStatusCommandHandler applies an admin status change through the order's
// transition table. Disallowed edges fail with errs.ErrInvalidStateTransition.
type SetOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewSetOrderStatusCommandHandler creates a SetOrderStatusCommandHandler.
func NewSetOrderStatusCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the order, sets the status and persists it. Entering Delivered starts
// the return window.
func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) error {
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

	if err = o.SetStatus(cmd.Status(), h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
