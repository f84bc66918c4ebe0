//go:build unit

package commands_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"carhaul-portal/internal/domain/user"
	"carhaul-portal/internal/infra/memstore"
	"carhaul-portal/internal/pkg/clock"
	"carhaul-portal/internal/pkg/config"
	"carhaul-portal/internal/pkg/jwt"
	"carhaul-portal/internal/upstream"
	"carhaul-portal/internal/usecase/commands"
	"carhaul-portal/tests/common/builder"
	gatewaymock "carhaul-portal/tests/mock/gateway"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	gateway  *gatewaymock.MockAuthGateway
	sessions *memstore.SessionStore
	wizards  *memstore.WizardStore
	clk      *clock.MockClock
	jwtSvc   *jwt.Service
	auth     *commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = gatewaymock.NewMockAuthGateway(s.mockCtrl)
	s.clk = clock.NewMockClock(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC))
	s.jwtSvc = jwt.NewService("test-secret-key", 24*time.Hour)
	s.resetStores()
}

// Each subtest gets fresh stores; sessions and flow state must not leak
// between scenarios.
func (s *AuthCommandsTestSuite) SetupSubTest() {
	s.resetStores()
}

func (s *AuthCommandsTestSuite) resetStores() {
	s.sessions = memstore.NewSessionStore()
	s.wizards = memstore.NewWizardStore()
	s.auth = commands.NewAuthCommands(
		s.gateway, s.sessions, s.wizards, s.jwtSvc, s.clk,
		config.SessionConfig{TTL: time.Hour, SweepInterval: time.Hour},
	)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) loginResult() *upstream.LoginResult {
	return &upstream.LoginResult{
		Token: "upstream-bearer-token",
		User: upstream.UserPayload{
			FirstName:   "Jordan",
			LastName:    "Blake",
			Email:       "jordan@example.com",
			PhoneNumber: "15125550142",
			Role:        "customer",
		},
	}
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.Run("success: creates a session and signs a portal token", func() {
		s.gateway.EXPECT().Login(gomock.Any(), "jordan@example.com", "password123").
			Return(s.loginResult(), nil)

		result, err := s.auth.Login(s.ctx, commands.LoginInput{
			Email:    "jordan@example.com",
			Password: "password123",
		})
		s.Require().NoError(err)

		s.NotEqual(uuid.Nil, result.SessionID)
		s.Equal("/dashboard", result.RedirectTo)
		s.Equal("Jordan", result.User.FirstName)
		s.Equal("customer", result.User.Role)

		claims, err := s.jwtSvc.ValidateToken(result.PortalToken)
		s.Require().NoError(err)
		s.Equal(result.SessionID, claims.SessionID)

		sess, err := s.sessions.Find(s.ctx, result.SessionID)
		s.Require().NoError(err)
		s.Require().NotNil(sess)
		s.True(sess.Authenticated())
		s.Equal("upstream-bearer-token", sess.UpstreamToken())
	})

	s.Run("success: adopts anonymous flow state and consumes the resume target", func() {
		state := builder.NewWizardBuilder().
			WithKey("visitor-cookie").
			AtQuoteReceived().
			WithResumeTarget("/reservation").
			BuildDomain()
		s.Require().NoError(s.wizards.Save(s.ctx, state))

		s.gateway.EXPECT().Login(gomock.Any(), "jordan@example.com", "password123").
			Return(s.loginResult(), nil)

		result, err := s.auth.Login(s.ctx, commands.LoginInput{
			Email:     "jordan@example.com",
			Password:  "password123",
			WizardKey: "visitor-cookie",
		})
		s.Require().NoError(err)
		s.Equal("/reservation", result.RedirectTo)

		// visitor row gone, state lives under the session key now
		orphan, err := s.wizards.Find(s.ctx, "visitor-cookie")
		s.Require().NoError(err)
		s.Nil(orphan)

		adopted, err := s.wizards.Find(s.ctx, result.SessionID.String())
		s.Require().NoError(err)
		s.Require().NotNil(adopted)
		s.NotNil(adopted.Quote())
		s.Nil(adopted.ResumeTarget())
	})

	s.Run("success: resume target is consumed exactly once across logins", func() {
		state := builder.NewWizardBuilder().
			WithKey("visitor-cookie").
			AtQuoteReceived().
			WithResumeTarget("/reservation").
			BuildDomain()
		s.Require().NoError(s.wizards.Save(s.ctx, state))

		s.gateway.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(s.loginResult(), nil).Times(2)

		first, err := s.auth.Login(s.ctx, commands.LoginInput{
			Email:     "jordan@example.com",
			Password:  "password123",
			WizardKey: "visitor-cookie",
		})
		s.Require().NoError(err)
		s.Equal("/reservation", first.RedirectTo)

		second, err := s.auth.Login(s.ctx, commands.LoginInput{
			Email:     "jordan@example.com",
			Password:  "password123",
			WizardKey: first.SessionID.String(),
		})
		s.Require().NoError(err)
		s.Equal("/dashboard", second.RedirectTo)
	})

	s.Run("success: unknown upstream role falls back to customer", func() {
		result := s.loginResult()
		result.User.Role = "superintendent"
		s.gateway.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(result, nil)

		login, err := s.auth.Login(s.ctx, commands.LoginInput{Email: "jordan@example.com", Password: "password123"})
		s.Require().NoError(err)
		s.Equal(string(user.RoleCustomer), login.User.Role)
	})

	s.Run("error: 401 maps to invalid credentials", func() {
		s.gateway.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &upstream.Error{Status: http.StatusUnauthorized, Message: "bad credentials"})

		_, err := s.auth.Login(s.ctx, commands.LoginInput{Email: "jordan@example.com", Password: "wrong"})
		s.ErrorIs(err, commands.ErrInvalidCredentials)
		s.Zero(s.sessions.Len())
	})

	s.Run("error: 403 maps to unverified account", func() {
		s.gateway.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &upstream.Error{Status: http.StatusForbidden, Message: "not verified"})

		_, err := s.auth.Login(s.ctx, commands.LoginInput{Email: "jordan@example.com", Password: "password123"})
		s.ErrorIs(err, commands.ErrAccountNotVerified)
	})
}

func (s *AuthCommandsTestSuite) TestLogout() {
	s.Run("removes the session and its flow state, idempotently", func() {
		s.gateway.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.loginResult(), nil)
		result, err := s.auth.Login(s.ctx, commands.LoginInput{Email: "jordan@example.com", Password: "password123"})
		s.Require().NoError(err)

		state := builder.NewWizardBuilder().WithKey(result.SessionID.String()).AtQuoteReceived().BuildDomain()
		s.Require().NoError(s.wizards.Save(s.ctx, state))

		s.Require().NoError(s.auth.Logout(s.ctx, result.SessionID))

		sess, err := s.sessions.Find(s.ctx, result.SessionID)
		s.Require().NoError(err)
		s.Nil(sess)
		gone, err := s.wizards.Find(s.ctx, result.SessionID.String())
		s.Require().NoError(err)
		s.Nil(gone)

		s.NoError(s.auth.Logout(s.ctx, result.SessionID))
	})
}

func (s *AuthCommandsTestSuite) TestRegister() {
	input := commands.RegisterInput{
		FirstName:   "Jordan",
		LastName:    "Blake",
		Email:       "jordan@example.com",
		PhoneNumber: "+1 (512) 555-0142",
		Password:    "password123",
	}

	s.Run("success: forwards a normalized payload", func() {
		s.gateway.EXPECT().Register(gomock.Any(), upstream.RegisterPayload{
			FirstName:   "Jordan",
			LastName:    "Blake",
			Email:       "jordan@example.com",
			PhoneNumber: "15125550142",
			Password:    "password123",
		}).Return(nil)

		s.NoError(s.auth.Register(s.ctx, input))
	})

	s.Run("error: validation failures never reach the gateway", func() {
		bad := input
		bad.Email = "not-an-email"
		s.ErrorIs(s.auth.Register(s.ctx, bad), user.ErrInvalidEmail)

		bad = input
		bad.Password = "short"
		s.ErrorIs(s.auth.Register(s.ctx, bad), user.ErrPasswordTooWeak)

		bad = input
		bad.PhoneNumber = "12345"
		s.ErrorIs(s.auth.Register(s.ctx, bad), user.ErrInvalidPhone)
	})

	s.Run("error: 409 maps to email already used", func() {
		s.gateway.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(&upstream.Error{Status: http.StatusConflict, Message: "duplicate"})

		s.ErrorIs(s.auth.Register(s.ctx, input), commands.ErrEmailAlreadyUsed)
	})
}

func (s *AuthCommandsTestSuite) TestConfirmOTP() {
	s.Run("maps 400 and 404 to invalid code", func() {
		s.gateway.EXPECT().ConfirmOTP(gomock.Any(), "000000").
			Return(&upstream.Error{Status: http.StatusBadRequest, Message: "bad otp"})
		s.ErrorIs(s.auth.ConfirmOTP(s.ctx, "000000"), commands.ErrInvalidOTP)

		s.gateway.EXPECT().ConfirmOTP(gomock.Any(), "111111").
			Return(&upstream.Error{Status: http.StatusNotFound, Message: "unknown otp"})
		s.ErrorIs(s.auth.ConfirmOTP(s.ctx, "111111"), commands.ErrInvalidOTP)
	})

	s.Run("passes through on success", func() {
		s.gateway.EXPECT().ConfirmOTP(gomock.Any(), "123456").Return(nil)
		s.NoError(s.auth.ConfirmOTP(s.ctx, "123456"))
	})
}

func (s *AuthCommandsTestSuite) TestForgotPassword() {
	s.Run("a missing account is reported as success", func() {
		s.gateway.EXPECT().ForgotPassword(gomock.Any(), "jordan@example.com").
			Return(&upstream.Error{Status: http.StatusNotFound, Message: "no such user"})

		s.NoError(s.auth.ForgotPassword(s.ctx, "jordan@example.com"))
	})

	s.Run("other upstream failures surface", func() {
		s.gateway.EXPECT().ForgotPassword(gomock.Any(), "jordan@example.com").
			Return(&upstream.Error{Status: http.StatusBadGateway, Message: "down"})

		s.Error(s.auth.ForgotPassword(s.ctx, "jordan@example.com"))
	})

	s.Run("rejects malformed email before calling upstream", func() {
		s.ErrorIs(s.auth.ForgotPassword(s.ctx, "nope"), user.ErrInvalidEmail)
	})
}

func (s *AuthCommandsTestSuite) TestResetPassword() {
	s.Run("rejects weak password before calling upstream", func() {
		s.ErrorIs(s.auth.ResetPassword(s.ctx, "reset-token", "short"), user.ErrPasswordTooWeak)
	})

	s.Run("forwards to upstream", func() {
		s.gateway.EXPECT().ResetPassword(gomock.Any(), "reset-token", "password123").Return(nil)
		s.NoError(s.auth.ResetPassword(s.ctx, "reset-token", "password123"))
	})
}
