package queries

import (
	"context"
	"net/http"

	"carhaul-portal/internal/pkg/errs"
	"carhaul-portal/internal/upstream"
	"carhaul-portal/internal/usecase/converter"
	"carhaul-portal/internal/usecase/readmodel"
)

var (
	ErrTrackingNotFound  = errs.New("no shipment found for that reference")
	ErrTrackingForbidden = errs.New("shipment belongs to another account")
	ErrReferenceRequired = errs.New("quote reference is required")
)

type TrackingQueries struct {
	gateway TrackingGateway
}

func NewTrackingQueries(gateway TrackingGateway) *TrackingQueries {
	return &TrackingQueries{gateway: gateway}
}

func (t *TrackingQueries) Status(ctx context.Context, upstreamToken, quoteReference string) (*readmodel.TrackingRM, error) {
	if quoteReference == "" {
		return nil, ErrReferenceRequired
	}
	record, err := t.gateway.Status(ctx, upstreamToken, quoteReference)
	if err != nil {
		switch {
		case upstream.IsStatus(err, http.StatusNotFound):
			return nil, errs.Mark(err, ErrTrackingNotFound)
		case upstream.IsStatus(err, http.StatusForbidden):
			return nil, errs.Mark(err, ErrTrackingForbidden)
		default:
			return nil, errs.Wrap(err, "tracking status upstream")
		}
	}
	return converter.TrackingToRM(record)
}
