//go:build unit

package upstream_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"carhaul-portal/internal/pkg/config"
	"carhaul-portal/internal/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *upstream.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return upstream.NewClient(config.UpstreamConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})
}

func TestAuthClientLogin(t *testing.T) {
	t.Run("decodes the pinned login contract", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/login", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "jordan@example.com", body["email"])

			_ = json.NewEncoder(w).Encode(map[string]any{
				"token": "upstream-bearer-token",
				"user": map[string]string{
					"firstName":   "Jordan",
					"lastName":    "Blake",
					"email":       "jordan@example.com",
					"phoneNumber": "15125550142",
					"role":        "customer",
				},
			})
		})

		result, err := upstream.NewAuthClient(client).Login(context.Background(), "jordan@example.com", "password123")
		require.NoError(t, err)

		assert.Equal(t, "upstream-bearer-token", result.Token)
		assert.Equal(t, "Jordan", result.User.FirstName)
		assert.Equal(t, "customer", result.User.Role)
	})

	t.Run("non-2xx becomes a status-carrying error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "bad credentials"})
		})

		_, err := upstream.NewAuthClient(client).Login(context.Background(), "jordan@example.com", "wrong")
		require.Error(t, err)

		assert.True(t, upstream.IsStatus(err, http.StatusUnauthorized))
		assert.Equal(t, "bad credentials", err.Error())
	})
}

func TestErrorMessageExtraction(t *testing.T) {
	testCases := []struct {
		name        string
		body        string
		expectedMsg string
	}{
		{
			name:        "message field wins",
			body:        `{"message":"from message","error":"from error"}`,
			expectedMsg: "from message",
		},
		{
			name:        "error field as fallback",
			body:        `{"error":"from error"}`,
			expectedMsg: "from error",
		},
		{
			name:        "raw text when not json",
			body:        "plain failure text",
			expectedMsg: "plain failure text",
		},
		{
			name:        "oversized raw body collapses to generic message",
			body:        strings.Repeat("x", 600),
			expectedMsg: "upstream request failed",
		},
		{
			name:        "empty body collapses to generic message",
			body:        "",
			expectedMsg: "upstream request failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(tc.body))
			})

			err := upstream.NewAuthClient(client).ConfirmOTP(context.Background(), "123456")
			require.Error(t, err)

			assert.True(t, upstream.IsStatus(err, http.StatusBadGateway))
			assert.Equal(t, tc.expectedMsg, err.Error())
		})
	}
}

func TestBearerToken(t *testing.T) {
	t.Run("authenticated calls carry the bearer header", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer upstream-bearer-token", r.Header.Get("Authorization"))
			assert.Equal(t, "RSV-7731", r.URL.Query().Get("reservationId"))
			_ = json.NewEncoder(w).Encode(map[string]string{
				"sessionId":   "cs_test_8842",
				"checkoutUrl": "https://pay.example.com/cs_test_8842",
			})
		})

		session, err := upstream.NewPaymentClient(client).CreateCheckout(context.Background(), "upstream-bearer-token", "RSV-7731")
		require.NoError(t, err)

		assert.Equal(t, "cs_test_8842", session.SessionID)
		assert.Equal(t, "https://pay.example.com/cs_test_8842", session.CheckoutURL)
	})

	t.Run("anonymous calls carry no authorization header", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusNoContent)
		})

		err := upstream.NewAuthClient(client).ForgotPassword(context.Background(), "jordan@example.com")
		assert.NoError(t, err)
	})
}

func TestStatusOf(t *testing.T) {
	_, ok := upstream.StatusOf(context.Canceled)
	assert.False(t, ok)

	status, ok := upstream.StatusOf(&upstream.Error{Status: 404, Message: "not found"})
	assert.True(t, ok)
	assert.Equal(t, 404, status)
}
