package request

import (
	"carhaul-portal/internal/usecase/commands"
)

type UpdateProgressRequest struct {
	QuoteReference  string `json:"quoteReference" binding:"required"`
	ShipmentStatus  string `json:"shipmentStatus" binding:"required"`
	DeliveryStatus  string `json:"deliveryStatus" binding:"required"`
	TransitProgress int    `json:"transitProgress"`
}

func (r UpdateProgressRequest) ToInput() commands.UpdateProgressInput {
	return commands.UpdateProgressInput{
		QuoteReference:  r.QuoteReference,
		ShipmentStatus:  r.ShipmentStatus,
		DeliveryStatus:  r.DeliveryStatus,
		TransitProgress: r.TransitProgress,
	}
}
