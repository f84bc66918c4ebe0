package queries

import (
	"context"

	"carhaul-portal/internal/pkg/errs"
	"carhaul-portal/internal/usecase/converter"
	"carhaul-portal/internal/usecase/readmodel"
)

type ProfileQueries struct {
	gateway DashboardGateway
}

func NewProfileQueries(gateway DashboardGateway) *ProfileQueries {
	return &ProfileQueries{gateway: gateway}
}

func (p *ProfileQueries) Dashboard(ctx context.Context, upstreamToken string) (*readmodel.DashboardRM, error) {
	dashboard, err := p.gateway.Dashboard(ctx, upstreamToken)
	if err != nil {
		return nil, errs.Wrap(err, "dashboard upstream")
	}
	return converter.DashboardToRM(dashboard)
}
