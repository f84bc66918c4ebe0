package upstream

import (
	"context"
	"net/url"
)

type CheckoutSession struct {
	SessionID   string `json:"sessionId"`
	CheckoutURL string `json:"checkoutUrl"`
}

type PaymentStatusResult struct {
	SessionID string `json:"sessionId"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

type PaymentClient struct {
	*Client
}

func NewPaymentClient(c *Client) *PaymentClient {
	return &PaymentClient{Client: c}
}

func (p *PaymentClient) CreateCheckout(ctx context.Context, token, reservationID string) (*CheckoutSession, error) {
	query := url.Values{"reservationId": {reservationID}}
	var session CheckoutSession
	if err := p.get(ctx, "/payments/checkout", query, token, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (p *PaymentClient) Status(ctx context.Context, token, sessionID string) (*PaymentStatusResult, error) {
	query := url.Values{"sessionId": {sessionID}}
	var status PaymentStatusResult
	if err := p.get(ctx, "/payments/status", query, token, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
