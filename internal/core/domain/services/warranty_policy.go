package services

import (
	"time"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/warranty"
	"fulfillment/internal/pkg/errs"
)

// Warranty ineligibility reason codes, in evaluation order.
const (
	ReasonProductNotInOrder  = "PRODUCT_NOT_IN_ORDER"
	ReasonNoWarrantyCoverage = "NO_WARRANTY_COVERAGE"
	ReasonWarrantyExpired    = "WARRANTY_EXPIRED"
	ReasonClaimAlreadyExists = "CLAIM_ALREADY_EXISTS"
)

// WarrantyPolicyName identifies warranty violations in errs.PolicyViolationError.
const WarrantyPolicyName = "warranty"

// WarrantyPolicy evaluates warranty windows. The purchase date is the order's creation time.
type WarrantyPolicy struct{}

// NewWarrantyPolicy creates a WarrantyPolicy.
func NewWarrantyPolicy() WarrantyPolicy {
	return WarrantyPolicy{}
}

// ExpirationDate returns purchaseDate plus warrantyMonths calendar months.
func (WarrantyPolicy) ExpirationDate(purchaseDate time.Time, warrantyMonths int) time.Time {
	return purchaseDate.AddDate(0, warrantyMonths, 0)
}

// CheckFile returns nil when a claim for product on o may be filed at now. existing is
// the claim already filed for the pair, or nil.
func (p WarrantyPolicy) CheckFile(o *order.Order, product catalog.Product, existing *warranty.Claim, now time.Time) error {
	var reason string
	switch {
	case !o.ContainsProduct(product.ID()):
		reason = ReasonProductNotInOrder
	case !product.HasWarranty():
		reason = ReasonNoWarrantyCoverage
	case now.After(p.ExpirationDate(o.CreatedAt(), product.WarrantyMonths())):
		reason = ReasonWarrantyExpired
	case existing != nil:
		reason = ReasonClaimAlreadyExists
	default:
		return nil
	}
	return errs.NewPolicyViolationError(WarrantyPolicyName, reason)
}

// CanFile is CheckFile as a predicate.
func (p WarrantyPolicy) CanFile(o *order.Order, product catalog.Product, existing *warranty.Claim, now time.Time) bool {
	return p.CheckFile(o, product, existing, now) == nil
}

// IsUnderWarranty reports whether now is within the claim's warranty window. It is
// evaluated on every read.
func (WarrantyPolicy) IsUnderWarranty(c *warranty.Claim, now time.Time) bool {
	return !now.After(c.WarrantyExpirationDate())
}
