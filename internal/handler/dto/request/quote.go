package request

import (
	"carhaul-portal/internal/domain/quote"
)

// QuoteRequest carries the whole quote form. Field-level validation happens
// in the domain so every missing field is reported at once, not just the
// first one gin's binding would reject.
type QuoteRequest struct {
	PickupLocation   string `json:"pickupLocation"`
	DeliveryLocation string `json:"deliveryLocation"`
	Brand            string `json:"brand"`
	Model            string `json:"model"`
	Year             int    `json:"year"`
	PickupDate       string `json:"pickupDate"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phoneNumber"`
}

func (r QuoteRequest) ToDomain() quote.Request {
	return quote.Request{
		PickupLocation:   r.PickupLocation,
		DeliveryLocation: r.DeliveryLocation,
		Brand:            r.Brand,
		Model:            r.Model,
		Year:             r.Year,
		PickupDate:       r.PickupDate,
		Email:            r.Email,
		PhoneNumber:      r.PhoneNumber,
	}
}
