package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRequestReturnCommandIsNotConstructed = errors.New(
	"RequestReturnCommand must be created via NewRequestReturnCommand constructor",
)

// RequestReturnCommand is a customer asking to return a delivered order.
type RequestReturnCommand struct {
	actor   kernel.Actor
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewRequestReturnCommand requires the acting user, the order and a non-blank reason.
func NewRequestReturnCommand(actor kernel.Actor, orderID kernel.UUID, reason string) (RequestReturnCommand, error) {
	var reasonErr error
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}

	if err := errors.Join(
		requireActor(actor),
		orderID.Validate(),
		reasonErr,
	); err != nil {
		return RequestReturnCommand{}, err
	}

	return RequestReturnCommand{
		actor:   actor,
		orderID: orderID,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestReturnCommand) Validate() error {
	return c.guard.Validate(ErrRequestReturnCommandIsNotConstructed)
}

func (c RequestReturnCommand) Actor() kernel.Actor  { return c.actor }
func (c RequestReturnCommand) OrderID() kernel.UUID { return c.orderID }
func (c RequestReturnCommand) Reason() string       { return c.reason }

func requireActor(actor kernel.Actor) error {
	if err := actor.ID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	return nil
}
