package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand hands a checked-out purchase over to fulfillment.
//
// Example:
//
//	item, _ := order.NewLineItem(productID, "Kettle", 1, decimal.RequireFromString("49.90"))
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID,
//	    []order.LineItem{item}, address, order.PaymentCompleted)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	items           []order.LineItem
	shippingAddress kernel.Address
	paymentStatus   order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the identifiers, the items and the address.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	items []order.LineItem,
	shippingAddress kernel.Address,
	paymentStatus order.PaymentStatus,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, customerID),
		cmd.setItems(items),
		cmd.setShippingAddress(shippingAddress),
		paymentStatus.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.paymentStatus = paymentStatus

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID               { return c.orderID }
func (c CreateOrderCommand) CustomerID() kernel.UUID            { return c.customerID }
func (c CreateOrderCommand) ShippingAddress() kernel.Address    { return c.shippingAddress }
func (c CreateOrderCommand) PaymentStatus() order.PaymentStatus { return c.paymentStatus }

// Items returns a copy of the line items.
func (c CreateOrderCommand) Items() []order.LineItem {
	items := make([]order.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setIDs(orderID, customerID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	c.orderID = orderID
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return order.ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]order.LineItem, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shippingAddress", err)
	}

	c.shippingAddress = address
	return nil
}
