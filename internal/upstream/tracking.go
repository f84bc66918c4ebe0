package upstream

import (
	"context"
	"net/url"
	"time"
)

type TrackingRecord struct {
	QuoteReference  string    `json:"quoteReference"`
	PickupAddress   string    `json:"pickupAddress"`
	DeliveryAddress string    `json:"deliveryAddress"`
	PickupDate      string    `json:"pickupDate"`
	ShipmentStatus  string    `json:"shipmentStatus"`
	DeliveryStatus  string    `json:"deliveryStatus"`
	TransitProgress int       `json:"transitProgress"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type TrackingClient struct {
	*Client
}

func NewTrackingClient(c *Client) *TrackingClient {
	return &TrackingClient{Client: c}
}

func (t *TrackingClient) Status(ctx context.Context, token, quoteReference string) (*TrackingRecord, error) {
	query := url.Values{"quoteReference": {quoteReference}}
	var record TrackingRecord
	if err := t.get(ctx, "/tracking/status", query, token, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
