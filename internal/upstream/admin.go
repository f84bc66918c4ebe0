package upstream

import "context"

type UpdateProgressPayload struct {
	QuoteReference  string `json:"quoteReference"`
	ShipmentStatus  string `json:"shipmentStatus"`
	DeliveryStatus  string `json:"deliveryStatus"`
	TransitProgress int    `json:"transitProgress"`
}

type AdminClient struct {
	*Client
}

func NewAdminClient(c *Client) *AdminClient {
	return &AdminClient{Client: c}
}

func (a *AdminClient) UpdateProgress(ctx context.Context, token string, payload UpdateProgressPayload) error {
	return a.patch(ctx, "/admin/update-progress", token, payload, nil)
}
