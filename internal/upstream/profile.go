package upstream

import "context"

type DashboardReservation struct {
	QuoteReference  string `json:"quoteReference"`
	PickupAddress   string `json:"pickupAddress"`
	DeliveryAddress string `json:"deliveryAddress"`
	ShipmentStatus  string `json:"shipmentStatus"`
	PriceCents      int64  `json:"priceCents"`
	CreatedAt       string `json:"createdAt"`
}

// Dashboard is the pinned flat contract; the legacy `stats: [...]` wrapper
// is not accepted.
type Dashboard struct {
	Reservations       []DashboardReservation `json:"reservations"`
	ShipmentsInTransit int                    `json:"shipmentsInTransit"`
	TotalSpentCents    int64                  `json:"totalSpentCents"`
}

type ProfilePatchPayload struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

type ProfileClient struct {
	*Client
}

func NewProfileClient(c *Client) *ProfileClient {
	return &ProfileClient{Client: c}
}

func (p *ProfileClient) Dashboard(ctx context.Context, token string) (*Dashboard, error) {
	var dashboard Dashboard
	if err := p.get(ctx, "/user-profile/dashboard", nil, token, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (p *ProfileClient) Update(ctx context.Context, token string, payload ProfilePatchPayload) error {
	return p.patch(ctx, "/user-profile/update", token, payload, nil)
}
