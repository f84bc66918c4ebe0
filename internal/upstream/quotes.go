package upstream

import "context"

type QuotePayload struct {
	PickupLocation   string `json:"pickupLocation"`
	DeliveryLocation string `json:"deliveryLocation"`
	Brand            string `json:"brand"`
	Model            string `json:"model"`
	Year             int    `json:"year"`
	PickupDate       string `json:"pickupDate"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phoneNumber"`
}

type QuoteResult struct {
	QuoteReference         string `json:"quoteReference"`
	PickupLocation         string `json:"pickupLocation"`
	DeliveryLocation       string `json:"deliveryLocation"`
	Brand                  string `json:"brand"`
	Model                  string `json:"model"`
	Year                   int    `json:"year"`
	PickupDate             string `json:"pickupDate"`
	DeliveryDate           string `json:"deliveryDate"`
	PriceCents             int64  `json:"priceCents"`
	DownPaymentCents       int64  `json:"downPaymentCents"`
	BalanceOnDeliveryCents int64  `json:"balanceOnDeliveryCents"`
}

type QuoteClient struct {
	*Client
}

func NewQuoteClient(c *Client) *QuoteClient {
	return &QuoteClient{Client: c}
}

func (q *QuoteClient) CreateVisitorQuote(ctx context.Context, payload QuotePayload) (*QuoteResult, error) {
	var result QuoteResult
	if err := q.post(ctx, "/quotes/visitor", "", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
