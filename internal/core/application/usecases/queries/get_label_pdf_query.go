package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetLabelPdfQueryIsNotConstructed = errors.New(
	"GetLabelPdfQuery must be created via NewGetLabelPdfQuery constructor",
)

// GetLabelPdfQuery renders the shipping label of a package. Admin only.
type GetLabelPdfQuery struct {
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLabelPdfQuery(packageID kernel.UUID) (GetLabelPdfQuery, error) {
	if err := packageID.Validate(); err != nil {
		return GetLabelPdfQuery{}, err
	}
	return GetLabelPdfQuery{packageID: packageID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLabelPdfQuery) Validate() error {
	return q.guard.Validate(ErrGetLabelPdfQueryIsNotConstructed)
}

func (q GetLabelPdfQuery) PackageID() kernel.UUID { return q.packageID }

// LabelDocument is a rendered label ready to be served as a download.
type LabelDocument struct {
	Filename    string
	ContentType string
	Content     []byte
}
