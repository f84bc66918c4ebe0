package queries

import (
	"context"

	"carhaul-portal/internal/pkg/errs"
	"carhaul-portal/internal/usecase/converter"
	"carhaul-portal/internal/usecase/readmodel"
)

var ErrBrandRequired = errs.New("brand is required")

// LookupQueries serves reference data for the quote form: brands, models and
// route directions. All of it is public and proxied straight through.
type LookupQueries struct {
	brands BrandGateway
	maps   MapsGateway
}

func NewLookupQueries(brands BrandGateway, maps MapsGateway) *LookupQueries {
	return &LookupQueries{brands: brands, maps: maps}
}

func (l *LookupQueries) Brands(ctx context.Context) ([]string, error) {
	brands, err := l.brands.ListBrands(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list brands upstream")
	}
	names := make([]string, len(brands))
	for i, b := range brands {
		names[i] = b.Name
	}
	return names, nil
}

func (l *LookupQueries) Models(ctx context.Context, brand string) ([]string, error) {
	if brand == "" {
		return nil, ErrBrandRequired
	}
	models, err := l.brands.ListModels(ctx, brand)
	if err != nil {
		return nil, errs.Wrap(err, "list models upstream")
	}
	if models == nil {
		models = []string{}
	}
	return models, nil
}

func (l *LookupQueries) Directions(ctx context.Context, origin, destination string) (*readmodel.DirectionsRM, error) {
	directions, err := l.maps.Directions(ctx, origin, destination)
	if err != nil {
		return nil, errs.Wrap(err, "directions upstream")
	}
	return converter.DirectionsToRM(directions), nil
}
