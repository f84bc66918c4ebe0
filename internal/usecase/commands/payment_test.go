//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"carhaul-portal/internal/domain/wizard"
	"carhaul-portal/internal/infra/memstore"
	"carhaul-portal/internal/pkg/clock"
	"carhaul-portal/internal/pkg/config"
	"carhaul-portal/internal/upstream"
	"carhaul-portal/internal/usecase/commands"
	"carhaul-portal/internal/usecase/readmodel"
	"carhaul-portal/tests/common/builder"
	gatewaymock "carhaul-portal/tests/mock/gateway"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const flowKey = "session-key"

type PaymentCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	gateway  *gatewaymock.MockPaymentGateway
	wizards  *memstore.WizardStore
	payments *commands.PaymentCommands
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = gatewaymock.NewMockPaymentGateway(s.mockCtrl)
	s.resetStores()
}

// Each subtest gets a fresh store; flow state must not leak between scenarios.
func (s *PaymentCommandsTestSuite) SetupSubTest() {
	s.resetStores()
}

func (s *PaymentCommandsTestSuite) resetStores() {
	s.wizards = memstore.NewWizardStore()
	s.payments = commands.NewPaymentCommands(
		s.gateway, s.wizards,
		clock.NewMockClock(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)),
		config.PaymentConfig{PollInterval: time.Millisecond, MaxPollAttempts: 3},
	)
}

func (s *PaymentCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) seed(b *builder.WizardBuilder) {
	s.Require().NoError(s.wizards.Save(s.ctx, b.WithKey(flowKey).BuildDomain()))
}

func (s *PaymentCommandsTestSuite) statusResult(status string) *upstream.PaymentStatusResult {
	return &upstream.PaymentStatusResult{
		SessionID: "cs_test_8842",
		Status:    status,
		Message:   "status " + status,
	}
}

func (s *PaymentCommandsTestSuite) TestStartCheckout() {
	s.Run("success: opens a checkout session and advances to pending", func() {
		s.seed(builder.NewWizardBuilder().AtProtectionSelected())
		s.gateway.EXPECT().CreateCheckout(gomock.Any(), "upstream-bearer-token", "RSV-7731").
			Return(&upstream.CheckoutSession{
				SessionID:   "cs_test_8842",
				CheckoutURL: "https://pay.example.com/cs_test_8842",
			}, nil)

		rm, err := s.payments.StartCheckout(s.ctx, flowKey, "upstream-bearer-token")
		s.Require().NoError(err)
		s.Equal("cs_test_8842", rm.SessionID)
		s.Equal("https://pay.example.com/cs_test_8842", rm.CheckoutURL)

		state, err := s.wizards.Find(s.ctx, flowKey)
		s.Require().NoError(err)
		s.Equal(wizard.StagePaymentPending, state.Stage())
		s.Equal("cs_test_8842", state.PaymentSessionID())
	})

	s.Run("error: no flow state at all", func() {
		_, err := s.payments.StartCheckout(s.ctx, flowKey, "upstream-bearer-token")
		s.ErrorIs(err, wizard.ErrQuoteRequired)
	})

	s.Run("error: no reservation yet", func() {
		s.seed(builder.NewWizardBuilder().AtDraftStarted())
		_, err := s.payments.StartCheckout(s.ctx, flowKey, "upstream-bearer-token")
		s.ErrorIs(err, wizard.ErrInvalidTransition)
	})

	s.Run("error: upstream failure maps to checkout unavailable", func() {
		s.seed(builder.NewWizardBuilder().AtProtectionSelected())
		s.gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &upstream.Error{Status: 502, Message: "processor down"})

		_, err := s.payments.StartCheckout(s.ctx, flowKey, "upstream-bearer-token")
		s.ErrorIs(err, commands.ErrCheckoutUnavailable)

		state, findErr := s.wizards.Find(s.ctx, flowKey)
		s.Require().NoError(findErr)
		s.Equal(wizard.StageProtectionSelected, state.Stage())
	})
}

func (s *PaymentCommandsTestSuite) TestProbe() {
	s.Run("non-terminal status leaves the flow pending", func() {
		s.seed(builder.NewWizardBuilder().AtPaymentPending())
		s.gateway.EXPECT().Status(gomock.Any(), "upstream-bearer-token", "cs_test_8842").
			Return(s.statusResult("pending"), nil)

		rm, err := s.payments.Probe(s.ctx, flowKey, "upstream-bearer-token")
		s.Require().NoError(err)
		s.Equal(readmodel.OutcomeStillConfirming, rm.Outcome)
		s.Equal("PENDING", rm.Status)

		state, _ := s.wizards.Find(s.ctx, flowKey)
		s.Equal(wizard.StagePaymentPending, state.Stage())
	})

	s.Run("success advances the flow", func() {
		s.seed(builder.NewWizardBuilder().AtPaymentPending())
		s.gateway.EXPECT().Status(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(s.statusResult("succeeded"), nil)

		rm, err := s.payments.Probe(s.ctx, flowKey, "upstream-bearer-token")
		s.Require().NoError(err)
		s.Equal(readmodel.OutcomeConfirmed, rm.Outcome)

		state, _ := s.wizards.Find(s.ctx, flowKey)
		s.Equal(wizard.StagePaymentSucceeded, state.Stage())
	})

	s.Run("error: nothing to confirm", func() {
		s.seed(builder.NewWizardBuilder().AtProtectionSelected())
		_, err := s.payments.Probe(s.ctx, flowKey, "upstream-bearer-token")
		s.ErrorIs(err, wizard.ErrNoPaymentSession)
	})
}

func (s *PaymentCommandsTestSuite) TestAwait() {
	s.Run("polls until the status turns terminal", func() {
		s.seed(builder.NewWizardBuilder().AtPaymentPending())
		gomock.InOrder(
			s.gateway.EXPECT().Status(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(s.statusResult("pending"), nil),
			s.gateway.EXPECT().Status(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(s.statusResult("pending"), nil),
			s.gateway.EXPECT().Status(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(s.statusResult("succeeded"), nil),
		)

		rm, err := s.payments.Await(s.ctx, flowKey, "upstream-bearer-token")
		s.Require().NoError(err)
		s.Equal(readmodel.OutcomeConfirmed, rm.Outcome)
		s.Equal(3, rm.Attempts)

		state, _ := s.wizards.Find(s.ctx, flowKey)
		s.Equal(wizard.StagePaymentSucceeded, state.Stage())
	})

	s.Run("exhausting the attempt budget is still_confirming, not an error", func() {
		s.seed(builder.NewWizardBuilder().AtPaymentPending())
		s.gateway.EXPECT().Status(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(s.statusResult("pending"), nil).Times(3)

		rm, err := s.payments.Await(s.ctx, flowKey, "upstream-bearer-token")
		s.Require().NoError(err)
		s.Equal(readmodel.OutcomeStillConfirming, rm.Outcome)
		s.Equal(3, rm.Attempts)

		// the flow stays pending so a later Probe can pick it up
		state, _ := s.wizards.Find(s.ctx, flowKey)
		s.Equal(wizard.StagePaymentPending, state.Stage())
		s.Equal("cs_test_8842", state.PaymentSessionID())
	})

	s.Run("a declined payment re-opens protection selection", func() {
		s.seed(builder.NewWizardBuilder().AtPaymentPending())
		gomock.InOrder(
			s.gateway.EXPECT().Status(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(s.statusResult("pending"), nil),
			s.gateway.EXPECT().Status(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(s.statusResult("rejected"), nil),
		)

		rm, err := s.payments.Await(s.ctx, flowKey, "upstream-bearer-token")
		s.Require().NoError(err)
		s.Equal(readmodel.OutcomeDeclined, rm.Outcome)
		s.Equal(2, rm.Attempts)

		state, _ := s.wizards.Find(s.ctx, flowKey)
		s.Equal(wizard.StagePaymentFailed, state.Stage())
		s.Empty(state.PaymentSessionID())
	})

	s.Run("error: nothing to await", func() {
		_, err := s.payments.Await(s.ctx, flowKey, "upstream-bearer-token")
		s.ErrorIs(err, wizard.ErrNoPaymentSession)
	})
}
