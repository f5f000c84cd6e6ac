// Package pgtypes holds the column types shared by the GORM repositories: embedded
// address and dimension columns, and uuid conversions.
package pgtypes

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressDTO is an address snapshot stored as embedded columns.
type AddressDTO struct {
	FullName   string `gorm:"size:200"`
	Street     string `gorm:"size:200"`
	City       string `gorm:"size:100"`
	PostalCode string `gorm:"size:20"`
	Country    string `gorm:"size:2"`
	Phone      string `gorm:"size:32"`
}

func FromAddress(a kernel.Address) AddressDTO {
	return AddressDTO{
		FullName:   a.FullName(),
		Street:     a.Street(),
		City:       a.City(),
		PostalCode: a.PostalCode(),
		Country:    a.Country(),
		Phone:      a.Phone(),
	}
}

func (d AddressDTO) ToAddress() (kernel.Address, error) {
	return kernel.NewAddress(d.FullName, d.Street, d.City, d.PostalCode, d.Country, d.Phone)
}

// DimensionsDTO stores parcel weight and size.
type DimensionsDTO struct {
	WeightKg float64 `gorm:"type:numeric(6,3)"`
	LengthCm float64 `gorm:"type:numeric(6,1)"`
	WidthCm  float64 `gorm:"type:numeric(6,1)"`
	HeightCm float64 `gorm:"type:numeric(6,1)"`
}

func FromDimensions(d kernel.Dimensions) DimensionsDTO {
	return DimensionsDTO{
		WeightKg: d.WeightKg(),
		LengthCm: d.LengthCm(),
		WidthCm:  d.WidthCm(),
		HeightCm: d.HeightCm(),
	}
}

func (d DimensionsDTO) ToDimensions() (kernel.Dimensions, error) {
	return kernel.NewDimensions(d.WeightKg, d.LengthCm, d.WidthCm, d.HeightCm)
}

// ToUUID converts a stored uuid into a kernel identifier.
func ToUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

// ToUUIDPtr is ToUUID for nullable columns.
func ToUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	u, err := ToUUID(*id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FromUUIDPtr converts a nullable kernel identifier into its column value.
func FromUUIDPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// IsDuplicateKey reports a unique constraint violation. The connection must be opened
// with gorm.Config{TranslateError: true}.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
