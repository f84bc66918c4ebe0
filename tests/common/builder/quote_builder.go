//go:build unit || e2e

package builder

import (
	"carhaul-portal/internal/domain/quote"
	"carhaul-portal/internal/domain/wizard"
)

type QuoteBuilder struct {
	Reference        string
	PickupLocation   string
	DeliveryLocation string
	Brand            string
	Model            string
	Year             int
	PickupDate       string
	Email            string
	PhoneNumber      string
	PriceCents       int64
	DownPaymentCents int64
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		Reference:        "Q-20260815-0042",
		PickupLocation:   "Austin, TX",
		DeliveryLocation: "Denver, CO",
		Brand:            "Toyota",
		Model:            "Camry",
		Year:             2021,
		PickupDate:       "2026-09-15",
		Email:            "test@example.com",
		PhoneNumber:      "+15125550142",
		PriceCents:       109900,
		DownPaymentCents: 19900,
	}
}

func (q *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(q)
	return q
}

func (q *QuoteBuilder) BuildRequest() quote.Request {
	return quote.Request{
		PickupLocation:   q.PickupLocation,
		DeliveryLocation: q.DeliveryLocation,
		Brand:            q.Brand,
		Model:            q.Model,
		Year:             q.Year,
		PickupDate:       q.PickupDate,
		Email:            q.Email,
		PhoneNumber:      q.PhoneNumber,
	}
}

func (q *QuoteBuilder) BuildDomain() *wizard.Quote {
	return &wizard.Quote{
		Reference:              q.Reference,
		PickupLocation:         q.PickupLocation,
		DeliveryLocation:       q.DeliveryLocation,
		Brand:                  q.Brand,
		Model:                  q.Model,
		Year:                   q.Year,
		PickupDate:             q.PickupDate,
		DeliveryDate:           "2026-09-22",
		PriceCents:             q.PriceCents,
		DownPaymentCents:       q.DownPaymentCents,
		BalanceOnDeliveryCents: q.PriceCents - q.DownPaymentCents,
	}
}
