package upstream

import "context"

type SecureReservationPayload struct {
	QuoteReference       string `json:"quoteReference"`
	PickupContactName    string `json:"pickupContactName"`
	PickupContactPhone   string `json:"pickupContactPhone"`
	PickupAddress        string `json:"pickupAddress"`
	DeliveryContactName  string `json:"deliveryContactName"`
	DeliveryContactPhone string `json:"deliveryContactPhone"`
	DeliveryAddress      string `json:"deliveryAddress"`
	CarrierType          string `json:"carrierType"`
	VehicleCondition     string `json:"vehicleCondition"`
	ShipmentDate         string `json:"shipmentDate"`
	ConsentToContact     bool   `json:"consentToContact"`
}

type SecureReservationResult struct {
	ReservationID string `json:"reservationId"`
}

type ReservationClient struct {
	*Client
}

func NewReservationClient(c *Client) *ReservationClient {
	return &ReservationClient{Client: c}
}

func (r *ReservationClient) Secure(ctx context.Context, token string, payload SecureReservationPayload) (*SecureReservationResult, error) {
	var result SecureReservationResult
	if err := r.post(ctx, "/reservations/secure", token, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
