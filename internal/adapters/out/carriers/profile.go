// Package carriers implements the carrier gateways: table-driven simulated carriers for
// postal, express and pickup-point delivery, and an HTTP client for the courier API.
package carriers

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/carrier"

	"github.com/shopspring/decimal"
)

const (
	digits       = "0123456789"
	alphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Profile is the configuration data that distinguishes one carrier from another.
type Profile struct {
	Type        carrier.Type
	DisplayName string

	// Tracking numbers are Prefix + Length characters from Alphabet + Suffix.
	Prefix   string
	Length   int
	Alphabet string
	Suffix   string

	BaselineDays        int
	Rates               carrier.RateTable
	RequiresPickupPoint bool
}

// Pattern returns the expression matching the carrier's tracking numbers.
func (p Profile) Pattern() *regexp.Regexp {
	class := "[0-9]"
	if p.Alphabet == alphanumeric {
		class = "[0-9A-Z]"
	}
	return regexp.MustCompile(fmt.Sprintf("^%s%s{%d}%s$",
		regexp.QuoteMeta(p.Prefix), class, p.Length, regexp.QuoteMeta(p.Suffix)))
}

// EstimatedDelivery returns the delivery estimate for a label issued at issuedAt.
func (p Profile) EstimatedDelivery(issuedAt time.Time) time.Time {
	return issuedAt.AddDate(0, 0, p.BaselineDays)
}

func (p Profile) trackingNumber(body string) string {
	return p.Prefix + body + p.Suffix
}

func labelURL(baseURL, trackingNumber string) string {
	return fmt.Sprintf("%s/%s.pdf", strings.TrimRight(baseURL, "/"), trackingNumber)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// PostalProfile is standard post.
func PostalProfile() Profile {
	return Profile{
		Type:         carrier.Postal,
		DisplayName:  "Standard Post",
		Prefix:       "PS",
		Length:       9,
		Alphabet:     digits,
		Suffix:       "PL",
		BaselineDays: 3,
		Rates: carrier.MustRateTable(
			carrier.RateStep{MaxWeightKg: 1, Price: price("8.99")},
			carrier.RateStep{MaxWeightKg: 2, Price: price("12.99")},
			carrier.RateStep{MaxWeightKg: 5, Price: price("16.99")},
			carrier.RateStep{MaxWeightKg: 10, Price: price("22.99")},
			carrier.RateStep{MaxWeightKg: 20, Price: price("32.99")},
		),
	}
}

// ExpressProfile is the next-day express courier.
func ExpressProfile() Profile {
	return Profile{
		Type:         carrier.Express,
		DisplayName:  "Express Courier",
		Prefix:       "EX",
		Length:       10,
		Alphabet:     digits,
		BaselineDays: 1,
		Rates: carrier.MustRateTable(
			carrier.RateStep{MaxWeightKg: 1, Price: price("15.99")},
			carrier.RateStep{MaxWeightKg: 2, Price: price("19.99")},
			carrier.RateStep{MaxWeightKg: 5, Price: price("24.99")},
			carrier.RateStep{MaxWeightKg: 10, Price: price("34.99")},
			carrier.RateStep{MaxWeightKg: 30, Price: price("49.99")},
		),
	}
}

// PickupPointProfile is the parcel locker network.
func PickupPointProfile() Profile {
	return Profile{
		Type:         carrier.PickupPoint,
		DisplayName:  "Parcel Lockers",
		Prefix:       "PP",
		Length:       12,
		Alphabet:     digits,
		BaselineDays: 3,
		Rates: carrier.MustRateTable(
			carrier.RateStep{MaxWeightKg: 1, Price: price("9.99")},
			carrier.RateStep{MaxWeightKg: 5, Price: price("13.99")},
			carrier.RateStep{MaxWeightKg: 10, Price: price("17.99")},
			carrier.RateStep{MaxWeightKg: 25, Price: price("21.99")},
		),
		RequiresPickupPoint: true,
	}
}

// CourierAPIProfile is the HTTP courier. Its rates are used only by the simulated fallback.
func CourierAPIProfile() Profile {
	return Profile{
		Type:         carrier.CourierAPI,
		DisplayName:  "Courier API",
		Prefix:       "CA",
		Length:       10,
		Alphabet:     alphanumeric,
		BaselineDays: 2,
		Rates: carrier.MustRateTable(
			carrier.RateStep{MaxWeightKg: 1, Price: price("12.49")},
			carrier.RateStep{MaxWeightKg: 2, Price: price("16.49")},
			carrier.RateStep{MaxWeightKg: 5, Price: price("20.49")},
			carrier.RateStep{MaxWeightKg: 10, Price: price("28.49")},
			carrier.RateStep{MaxWeightKg: 31.5, Price: price("39.49")},
		),
	}
}
