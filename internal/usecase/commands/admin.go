package commands

import (
	"context"

	"carhaul-portal/internal/pkg/errs"
	"carhaul-portal/internal/upstream"
)

var (
	ErrProgressOutOfRange = errs.New("transit progress must be between 0 and 100")
	ErrReferenceRequired  = errs.New("quote reference is required")
)

type UpdateProgressInput struct {
	QuoteReference  string
	ShipmentStatus  string
	DeliveryStatus  string
	TransitProgress int
}

type AdminCommands struct {
	gateway AdminGateway
}

func NewAdminCommands(gateway AdminGateway) *AdminCommands {
	return &AdminCommands{gateway: gateway}
}

func (a *AdminCommands) UpdateProgress(ctx context.Context, upstreamToken string, input UpdateProgressInput) error {
	if input.QuoteReference == "" {
		return ErrReferenceRequired
	}
	if input.TransitProgress < 0 || input.TransitProgress > 100 {
		return ErrProgressOutOfRange
	}
	err := a.gateway.UpdateProgress(ctx, upstreamToken, upstream.UpdateProgressPayload{
		QuoteReference:  input.QuoteReference,
		ShipmentStatus:  input.ShipmentStatus,
		DeliveryStatus:  input.DeliveryStatus,
		TransitProgress: input.TransitProgress,
	})
	if err != nil {
		return errs.Wrap(err, "update progress upstream")
	}
	return nil
}
