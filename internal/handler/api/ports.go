package api

import (
	"context"

	"carhaul-portal/internal/domain/quote"
	"carhaul-portal/internal/domain/wizard"
	"carhaul-portal/internal/usecase/commands"
	"carhaul-portal/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Usecase ports as the handlers consume them. Satisfied by the command and
// query services; mocked in handler tests.

type AuthCommands interface {
	Register(ctx context.Context, input commands.RegisterInput) error
	Login(ctx context.Context, input commands.LoginInput) (*commands.LoginResult, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	ConfirmOTP(ctx context.Context, otp string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	ResendToken(ctx context.Context, email string) error
}

type WizardCommands interface {
	RequestQuote(ctx context.Context, key string, req quote.Request) (*readmodel.WizardStateRM, error)
	RetryQuote(ctx context.Context, key string) (*readmodel.WizardStateRM, error)
	SaveDraft(ctx context.Context, key string, draft wizard.Draft) (*readmodel.WizardStateRM, error)
	Secure(ctx context.Context, key, upstreamToken string) (*readmodel.WizardStateRM, error)
	SelectProtection(ctx context.Context, key, plan string) (*readmodel.WizardStateRM, error)
	MarkHandoff(ctx context.Context, key, redirectTo string) error
}

type WizardQueries interface {
	State(ctx context.Context, key string) (*readmodel.WizardStateRM, error)
}

type PaymentCommands interface {
	StartCheckout(ctx context.Context, key, upstreamToken string) (*readmodel.CheckoutRM, error)
	Probe(ctx context.Context, key, upstreamToken string) (*readmodel.PaymentStatusRM, error)
	Await(ctx context.Context, key, upstreamToken string) (*readmodel.PaymentStatusRM, error)
}

type LookupQueries interface {
	Brands(ctx context.Context) ([]string, error)
	Models(ctx context.Context, brand string) ([]string, error)
	Directions(ctx context.Context, origin, destination string) (*readmodel.DirectionsRM, error)
}

type SuggestQueries interface {
	Autocomplete(ctx context.Context, key, input string) ([]readmodel.SuggestionRM, error)
}

type TrackingQueries interface {
	Status(ctx context.Context, upstreamToken, quoteReference string) (*readmodel.TrackingRM, error)
}

type ProfileCommands interface {
	Update(ctx context.Context, sessionID uuid.UUID, upstreamToken string, input commands.ProfilePatchInput) (*readmodel.SessionUserRM, error)
}

type ProfileQueries interface {
	Dashboard(ctx context.Context, upstreamToken string) (*readmodel.DashboardRM, error)
}

type AdminCommands interface {
	UpdateProgress(ctx context.Context, upstreamToken string, input commands.UpdateProgressInput) error
}

type ContactCommands interface {
	Send(ctx context.Context, input commands.ContactInput) error
}
