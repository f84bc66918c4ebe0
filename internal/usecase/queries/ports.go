package queries

import (
	"context"

	"carhaul-portal/internal/upstream"
)

type BrandGateway interface {
	ListBrands(ctx context.Context) ([]upstream.Brand, error)
	ListModels(ctx context.Context, brand string) ([]string, error)
}

type MapsGateway interface {
	Autocomplete(ctx context.Context, input string) ([]upstream.Suggestion, error)
	Directions(ctx context.Context, origin, destination string) (*upstream.Directions, error)
}

type TrackingGateway interface {
	Status(ctx context.Context, token, quoteReference string) (*upstream.TrackingRecord, error)
}

type DashboardGateway interface {
	Dashboard(ctx context.Context, token string) (*upstream.Dashboard, error)
}
