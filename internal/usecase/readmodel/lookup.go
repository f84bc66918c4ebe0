package readmodel

import "time"

type SuggestionRM struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

type DirectionsRM struct {
	DistanceText string `json:"distance_text"`
	DurationText string `json:"duration_text"`
}

type TrackingRM struct {
	QuoteReference  string    `json:"quote_reference"`
	PickupAddress   string    `json:"pickup_address"`
	DeliveryAddress string    `json:"delivery_address"`
	PickupDate      string    `json:"pickup_date"`
	ShipmentStatus  string    `json:"shipment_status"`
	DeliveryStatus  string    `json:"delivery_status"`
	TransitProgress int       `json:"transit_progress"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type DashboardReservationRM struct {
	QuoteReference  string `json:"quote_reference"`
	PickupAddress   string `json:"pickup_address"`
	DeliveryAddress string `json:"delivery_address"`
	ShipmentStatus  string `json:"shipment_status"`
	PriceCents      int64  `json:"price_cents"`
	CreatedAt       string `json:"created_at"`
}

type DashboardRM struct {
	Reservations       []DashboardReservationRM `json:"reservations"`
	ShipmentsInTransit int                      `json:"shipments_in_transit"`
	TotalSpentCents    int64                    `json:"total_spent_cents"`
}
