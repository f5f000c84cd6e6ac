// Package catalog holds the read-only product view the engine needs for warranty decisions.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Product is a catalog entry as seen by fulfillment.
type Product struct {
	id             kernel.UUID
	name           string
	warrantyMonths int
}

// NewProduct validates a catalog entry. A product without warranty has warrantyMonths 0.
func NewProduct(id kernel.UUID, name string, warrantyMonths int) (Product, error) {
	var nameErr, monthsErr error
	name = strings.TrimSpace(name)
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if warrantyMonths < 0 {
		monthsErr = errs.NewValueIsInvalidErrorWithCause("warrantyMonths", fmt.Errorf("%d is negative", warrantyMonths))
	}
	if err := errors.Join(id.Validate(), nameErr, monthsErr); err != nil {
		return Product{}, err
	}

	return Product{id: id, name: name, warrantyMonths: warrantyMonths}, nil
}

func (p Product) ID() kernel.UUID     { return p.id }
func (p Product) Name() string        { return p.name }
func (p Product) WarrantyMonths() int { return p.warrantyMonths }

// HasWarranty reports whether the product carries any warranty.
func (p Product) HasWarranty() bool { return p.warrantyMonths > 0 }
