package commands

import (
	"context"
	"net/http"

	"carhaul-portal/internal/domain/session"
	"carhaul-portal/internal/domain/user"
	"carhaul-portal/internal/pkg/clock"
	"carhaul-portal/internal/pkg/config"
	"carhaul-portal/internal/pkg/errs"
	"carhaul-portal/internal/pkg/jwt"
	"carhaul-portal/internal/upstream"
	"carhaul-portal/internal/usecase/readmodel"
	"carhaul-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrEmailAlreadyUsed   = errs.New("email is already registered")
	ErrAccountNotVerified = errs.New("account is not verified")
	ErrInvalidOTP         = errs.New("invalid or expired verification code")
)

// defaultRedirect is where a login lands when no flow handoff is pending.
const defaultRedirect = "/dashboard"

type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
}

type LoginInput struct {
	Email    string
	Password string
	// WizardKey is the visitor key whose flow state should follow the user
	// into the authenticated session. Empty when no anonymous flow exists.
	WizardKey string
}

type LoginResult struct {
	SessionID   uuid.UUID
	PortalToken string
	User        readmodel.SessionUserRM
	RedirectTo  string
}

type AuthCommands struct {
	gateway  AuthGateway
	sessions shared.SessionStore
	wizards  shared.WizardStore
	jwt      *jwt.Service
	clk      clock.Clock
	cfg      config.SessionConfig
}

func NewAuthCommands(
	gateway AuthGateway,
	sessions shared.SessionStore,
	wizards shared.WizardStore,
	jwtSvc *jwt.Service,
	clk clock.Clock,
	cfg config.SessionConfig,
) *AuthCommands {
	return &AuthCommands{
		gateway:  gateway,
		sessions: sessions,
		wizards:  wizards,
		jwt:      jwtSvc,
		clk:      clk,
		cfg:      cfg,
	}
}

func (a *AuthCommands) Register(ctx context.Context, input RegisterInput) error {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return err
	}
	if _, err := user.NewPassword(input.Password); err != nil {
		return err
	}
	phone, err := user.NewPhone(input.PhoneNumber)
	if err != nil {
		return err
	}

	err = a.gateway.Register(ctx, upstream.RegisterPayload{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       email.Value(),
		PhoneNumber: phone.Value(),
		Password:    input.Password,
	})
	if err != nil {
		if upstream.IsStatus(err, http.StatusConflict) {
			return errs.Mark(err, ErrEmailAlreadyUsed)
		}
		return errs.Wrap(err, "register upstream")
	}
	return nil
}

// Login authenticates against the upstream API, creates a server-side session
// holding the upstream token plus a profile snapshot, and moves any anonymous
// flow state onto the new session. The portal token it returns references the
// session row only; the upstream token never leaves the server.
func (a *AuthCommands) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	result, err := a.gateway.Login(ctx, input.Email, input.Password)
	if err != nil {
		switch {
		case upstream.IsStatus(err, http.StatusUnauthorized):
			return nil, errs.Mark(err, ErrInvalidCredentials)
		case upstream.IsStatus(err, http.StatusForbidden):
			return nil, errs.Mark(err, ErrAccountNotVerified)
		default:
			return nil, errs.Wrap(err, "login upstream")
		}
	}

	role, err := user.NewRole(result.User.Role)
	if err != nil {
		role = user.RoleCustomer
	}
	snapshot := &session.User{
		FirstName:   result.User.FirstName,
		LastName:    result.User.LastName,
		Email:       result.User.Email,
		PhoneNumber: result.User.PhoneNumber,
		Role:        role,
	}

	sess, err := session.NewSession(snapshot, result.Token, a.clk.Now(), a.cfg.TTL)
	if err != nil {
		return nil, errs.Wrap(err, "build session")
	}
	if err := a.sessions.Create(ctx, sess); err != nil {
		return nil, errs.Wrap(err, "persist session")
	}

	token, err := a.jwt.GenerateToken(sess.ID(), role)
	if err != nil {
		return nil, errs.Wrap(err, "sign portal token")
	}

	redirectTo, err := a.adoptWizardState(ctx, input.WizardKey, sess.ID())
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		SessionID:   sess.ID(),
		PortalToken: token,
		User: readmodel.SessionUserRM{
			FirstName:   snapshot.FirstName,
			LastName:    snapshot.LastName,
			Email:       snapshot.Email,
			PhoneNumber: snapshot.PhoneNumber,
			Role:        string(role),
		},
		RedirectTo: redirectTo,
	}, nil
}

// adoptWizardState rekeys anonymous flow state onto the session and consumes
// a pending resume target, if any. The target slot holds one redirect and is
// cleared on read, so a second login lands on the default page.
func (a *AuthCommands) adoptWizardState(ctx context.Context, wizardKey string, sessionID uuid.UUID) (string, error) {
	sessionKey := sessionID.String()

	if wizardKey != "" && wizardKey != sessionKey {
		state, err := a.wizards.Find(ctx, wizardKey)
		if err != nil {
			return "", errs.Wrap(err, "load visitor flow state")
		}
		if state != nil {
			if err := a.wizards.Rekey(ctx, wizardKey, sessionKey); err != nil {
				return "", errs.Wrap(err, "adopt visitor flow state")
			}
		}
	}

	state, err := a.wizards.Find(ctx, sessionKey)
	if err != nil {
		return "", errs.Wrap(err, "load flow state")
	}
	if state == nil {
		return defaultRedirect, nil
	}

	target := state.ConsumeResumeTarget()
	if target == nil {
		return defaultRedirect, nil
	}
	state.Touch(a.clk.Now())
	if err := a.wizards.Save(ctx, state); err != nil {
		return "", errs.Wrap(err, "clear resume target")
	}
	return target.RedirectTo, nil
}

// Logout destroys the session and its flow state. Idempotent: a second call
// with the same ID is a no-op.
func (a *AuthCommands) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := a.wizards.Delete(ctx, sessionID.String()); err != nil {
		return errs.Wrap(err, "delete flow state")
	}
	if err := a.sessions.Delete(ctx, sessionID); err != nil {
		return errs.Wrap(err, "delete session")
	}
	return nil
}

func (a *AuthCommands) ConfirmOTP(ctx context.Context, otp string) error {
	if err := a.gateway.ConfirmOTP(ctx, otp); err != nil {
		if upstream.IsStatus(err, http.StatusBadRequest) || upstream.IsStatus(err, http.StatusNotFound) {
			return errs.Mark(err, ErrInvalidOTP)
		}
		return errs.Wrap(err, "confirm otp upstream")
	}
	return nil
}

func (a *AuthCommands) ForgotPassword(ctx context.Context, email string) error {
	addr, err := user.NewEmail(email)
	if err != nil {
		return err
	}
	// A missing account is reported as success so the endpoint cannot be
	// used to probe for registered emails.
	if err := a.gateway.ForgotPassword(ctx, addr.Value()); err != nil && !upstream.IsStatus(err, http.StatusNotFound) {
		return errs.Wrap(err, "forgot password upstream")
	}
	return nil
}

func (a *AuthCommands) ResetPassword(ctx context.Context, token, password string) error {
	if _, err := user.NewPassword(password); err != nil {
		return err
	}
	if err := a.gateway.ResetPassword(ctx, token, password); err != nil {
		return errs.Wrap(err, "reset password upstream")
	}
	return nil
}

func (a *AuthCommands) ResendToken(ctx context.Context, email string) error {
	addr, err := user.NewEmail(email)
	if err != nil {
		return err
	}
	if err := a.gateway.ResendToken(ctx, addr.Value()); err != nil {
		return errs.Wrap(err, "resend token upstream")
	}
	return nil
}
