package kernel

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when a zero-value Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable postal address. Orders snapshot the customer's address at
// checkout, packages copy it as the "to" address and the warehouse configuration provides
// the "from" address of every label.
type Address struct {
	fullName   string
	street     string
	city       string
	postalCode string
	country    string
	phone      string
	guard      guard.ConstructorGuard
}

// NewAddress validates and builds an Address. Full name, street, city, postal code and
// country are required; phone is optional.
func NewAddress(fullName, street, city, postalCode, country, phone string) (Address, error) {
	a := Address{
		fullName:   strings.TrimSpace(fullName),
		street:     strings.TrimSpace(street),
		city:       strings.TrimSpace(city),
		postalCode: strings.TrimSpace(postalCode),
		country:    strings.TrimSpace(country),
		phone:      strings.TrimSpace(phone),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		required("fullName", a.fullName),
		required("street", a.street),
		required("city", a.city),
		required("postalCode", a.postalCode),
		required("country", a.country),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Validate checks that the address was built by NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// FullName returns the recipient name.
func (a Address) FullName() string { return a.fullName }

// Street returns the street line.
func (a Address) Street() string { return a.street }

// City returns the city.
func (a Address) City() string { return a.city }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Country returns the country.
func (a Address) Country() string { return a.country }

// Phone returns the contact phone, possibly empty.
func (a Address) Phone() string { return a.phone }

// Lines renders the address as label lines.
func (a Address) Lines() []string {
	lines := []string{a.fullName, a.street, a.postalCode + " " + a.city, a.country}
	if a.phone != "" {
		lines = append(lines, a.phone)
	}
	return lines
}

// String returns the address on one line.
func (a Address) String() string {
	return strings.Join(a.Lines(), ", ")
}

func required(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
