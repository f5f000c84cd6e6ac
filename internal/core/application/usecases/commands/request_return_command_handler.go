package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// RequestReturnCommandHandler opens a return when the return policy allows it.
//
// Example:
//
//	handler := NewRequestReturnCommandHandler(uowFactory, services.NewReturnPolicy(), clock)
//	err := handler.Handle(ctx, cmd)
//	if reason, ok := errs.ReasonOf(err); ok {
//	    // WINDOW_EXPIRED, ALREADY_REQUESTED, ...
//	}
type RequestReturnCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     order.ReturnEligibility
	clock      kernel.Clock
}

// NewRequestReturnCommandHandler creates a RequestReturnCommandHandler.
func NewRequestReturnCommandHandler(
	uowFactory OrderUoWFactory,
	policy order.ReturnEligibility,
	clock kernel.Clock,
) RequestReturnCommandHandler {
	return RequestReturnCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		clock:      clock,
	}
}

// Handle fails with errs.ErrForbidden when the actor neither owns the order nor is an
// admin, and with errs.ErrPolicyViolation carrying the reason when the order is not eligible.
func (h RequestReturnCommandHandler) Handle(ctx context.Context, cmd RequestReturnCommand) error {
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

	if !cmd.Actor().CanAccess(o.CustomerID()) {
		return errs.NewForbiddenError(cmd.Actor().ID.String(), "order", o.ID())
	}

	if err = o.RequestReturn(cmd.Reason(), h.clock.Now(), h.policy); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
