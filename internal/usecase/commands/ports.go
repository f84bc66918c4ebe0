package commands

import (
	"context"

	"carhaul-portal/internal/upstream"
)

// Gateways over the upstream core API. Satisfied by the clients in
// internal/upstream; mocked in handler and usecase tests.

type AuthGateway interface {
	Register(ctx context.Context, payload upstream.RegisterPayload) error
	Login(ctx context.Context, email, password string) (*upstream.LoginResult, error)
	ConfirmOTP(ctx context.Context, otp string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	ResendToken(ctx context.Context, email string) error
}

type QuoteGateway interface {
	CreateVisitorQuote(ctx context.Context, payload upstream.QuotePayload) (*upstream.QuoteResult, error)
}

type ReservationGateway interface {
	Secure(ctx context.Context, token string, payload upstream.SecureReservationPayload) (*upstream.SecureReservationResult, error)
}

type PaymentGateway interface {
	CreateCheckout(ctx context.Context, token, reservationID string) (*upstream.CheckoutSession, error)
	Status(ctx context.Context, token, sessionID string) (*upstream.PaymentStatusResult, error)
}

type ContactGateway interface {
	Send(ctx context.Context, payload upstream.ContactPayload) error
}

type ProfileGateway interface {
	Update(ctx context.Context, token string, payload upstream.ProfilePatchPayload) error
}

type AdminGateway interface {
	UpdateProgress(ctx context.Context, token string, payload upstream.UpdateProgressPayload) error
}
