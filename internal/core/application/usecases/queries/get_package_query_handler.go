package queries

import (
	"context"

	"fulfillment/internal/core/ports"
)

type GetPackageQueryHandler struct {
	packages ports.PackageRepository
}

func NewGetPackageQueryHandler(packages ports.PackageRepository) GetPackageQueryHandler {
	return GetPackageQueryHandler{packages: packages}
}

func (h GetPackageQueryHandler) Handle(ctx context.Context, query GetPackageQuery) (PackageView, error) {
	if err := query.Validate(); err != nil {
		return PackageView{}, err
	}

	p, err := h.packages.Get(ctx, query.PackageID())
	if err != nil {
		return PackageView{}, err
	}
	return NewPackageView(p), nil
}
