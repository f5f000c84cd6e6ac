package order

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a zero-value LineItem is used.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError("line item must be created via NewLineItem constructor")

// LineItem is a snapshot of a purchased product at checkout time.
type LineItem struct {
	productID kernel.UUID
	name      string
	quantity  int
	unitPrice decimal.Decimal
	guard     guard.ConstructorGuard
}

// NewLineItem validates and creates a LineItem. Quantity must be positive and the
// unit price must not be negative.
func NewLineItem(productID kernel.UUID, name string, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	item := LineItem{
		productID: productID,
		name:      strings.TrimSpace(name),
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}

	var nameErr, quantityErr, priceErr error
	if item.name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice.IsNegative() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("unit price is invalid", fmt.Errorf("%s is negative", unitPrice))
	}

	if err := errors.Join(productID.Validate(), nameErr, quantityErr, priceErr); err != nil {
		return LineItem{}, err
	}
	return item, nil
}

// Validate checks the item was built by NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the purchased product.
func (i LineItem) ProductID() kernel.UUID { return i.productID }

// Name returns the product name at purchase time.
func (i LineItem) Name() string { return i.name }

// Quantity returns the purchased quantity.
func (i LineItem) Quantity() int { return i.quantity }

// UnitPrice returns the price of one unit.
func (i LineItem) UnitPrice() decimal.Decimal { return i.unitPrice }

// Subtotal returns quantity * unit price.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}
