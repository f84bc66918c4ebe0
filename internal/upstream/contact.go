package upstream

import "context"

type ContactPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

type ContactClient struct {
	*Client
}

func NewContactClient(c *Client) *ContactClient {
	return &ContactClient{Client: c}
}

func (c *ContactClient) Send(ctx context.Context, payload ContactPayload) error {
	return c.post(ctx, "/contact", "", payload, nil)
}
