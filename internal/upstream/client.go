// Package upstream is the typed client for the brokerage core API. Every
// business decision (pricing, credential verification, geocoding, payment
// processing, shipment persistence) happens behind these calls; the portal
// only shapes requests and normalizes failures.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"carhaul-portal/internal/pkg/config"
)

const genericFailureMessage = "upstream request failed"

// Error is the single normalized failure shape for non-2xx responses. The
// message comes from the server's `message` or `error` field when present.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func StatusOf(err error) (int, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Status, true
	}
	return 0, false
}

func IsStatus(err error, status int) bool {
	s, ok := StatusOf(err)
	return ok && s == status
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, query, token, nil, out)
}

func (c *Client) post(ctx context.Context, path string, token string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, token, body, out)
}

func (c *Client) patch(ctx context.Context, path string, token string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, token, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Status: resp.StatusCode, Message: extractMessage(data)}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// extractMessage pins a single error contract: `message` first, `error`
// second, raw text as a last resort.
func extractMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Err != "" {
			return body.Err
		}
	}
	if text := strings.TrimSpace(string(data)); text != "" && len(text) <= 512 {
		return text
	}
	return genericFailureMessage
}
