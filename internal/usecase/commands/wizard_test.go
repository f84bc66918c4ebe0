//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"carhaul-portal/internal/domain/quote"
	"carhaul-portal/internal/domain/wizard"
	"carhaul-portal/internal/infra/memstore"
	"carhaul-portal/internal/pkg/clock"
	"carhaul-portal/internal/upstream"
	"carhaul-portal/internal/usecase/commands"
	"carhaul-portal/tests/common/builder"
	gatewaymock "carhaul-portal/tests/mock/gateway"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WizardCommandsTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockCtrl     *gomock.Controller
	quotes       *gatewaymock.MockQuoteGateway
	reservations *gatewaymock.MockReservationGateway
	wizards      *memstore.WizardStore
	wizard       *commands.WizardCommands
}

func (s *WizardCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.quotes = gatewaymock.NewMockQuoteGateway(s.mockCtrl)
	s.reservations = gatewaymock.NewMockReservationGateway(s.mockCtrl)
	s.resetStores()
}

// Each subtest gets a fresh store; flow state must not leak between scenarios.
func (s *WizardCommandsTestSuite) SetupSubTest() {
	s.resetStores()
}

func (s *WizardCommandsTestSuite) resetStores() {
	s.wizards = memstore.NewWizardStore()
	s.wizard = commands.NewWizardCommands(
		s.quotes, s.reservations, s.wizards,
		clock.NewMockClock(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)),
	)
}

func (s *WizardCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWizardCommandsSuite(t *testing.T) {
	suite.Run(t, new(WizardCommandsTestSuite))
}

func (s *WizardCommandsTestSuite) quoteResult() *upstream.QuoteResult {
	return &upstream.QuoteResult{
		QuoteReference:         "Q-20260815-0042",
		PickupLocation:         "Austin, TX",
		DeliveryLocation:       "Denver, CO",
		Brand:                  "Toyota",
		Model:                  "Camry",
		Year:                   2021,
		PickupDate:             "2026-09-15",
		DeliveryDate:           "2026-09-22",
		PriceCents:             109900,
		DownPaymentCents:       19900,
		BalanceOnDeliveryCents: 90000,
	}
}

func (s *WizardCommandsTestSuite) TestRequestQuote() {
	req := builder.NewQuoteBuilder().BuildRequest()

	s.Run("success: creates flow state with the priced quote", func() {
		s.quotes.EXPECT().CreateVisitorQuote(gomock.Any(), gomock.Any()).
			Return(s.quoteResult(), nil)

		rm, err := s.wizard.RequestQuote(s.ctx, flowKey, req)
		s.Require().NoError(err)

		s.Equal("quote_received", rm.Stage)
		s.Require().NotNil(rm.Quote)
		s.Equal("Q-20260815-0042", rm.Quote.Reference)
		s.Equal(int64(109900), rm.Quote.PriceCents)
		s.False(rm.CanRetryQuote)
	})

	s.Run("error: validation failures never reach the gateway", func() {
		bad := req
		bad.Year = 1800
		_, err := s.wizard.RequestQuote(s.ctx, flowKey, bad)
		s.ErrorIs(err, quote.ErrInvalidYear)
	})

	s.Run("error: upstream failure records the payload for retry", func() {
		s.quotes.EXPECT().CreateVisitorQuote(gomock.Any(), gomock.Any()).
			Return(nil, &upstream.Error{Status: 503, Message: "pricing down"})

		_, err := s.wizard.RequestQuote(s.ctx, "retry-key", req)
		s.ErrorIs(err, commands.ErrQuoteUnavailable)

		state, findErr := s.wizards.Find(s.ctx, "retry-key")
		s.Require().NoError(findErr)
		s.Require().NotNil(state)
		s.NotEmpty(state.LastQuoteAttempt())
	})
}

func (s *WizardCommandsTestSuite) TestRetryQuote() {
	req := builder.NewQuoteBuilder().BuildRequest()

	s.Run("replays the failed submission verbatim", func() {
		s.quotes.EXPECT().CreateVisitorQuote(gomock.Any(), gomock.Any()).
			Return(nil, &upstream.Error{Status: 503, Message: "pricing down"})
		_, err := s.wizard.RequestQuote(s.ctx, flowKey, req)
		s.Require().ErrorIs(err, commands.ErrQuoteUnavailable)

		s.quotes.EXPECT().CreateVisitorQuote(gomock.Any(), upstream.QuotePayload{
			PickupLocation:   req.PickupLocation,
			DeliveryLocation: req.DeliveryLocation,
			Brand:            req.Brand,
			Model:            req.Model,
			Year:             req.Year,
			PickupDate:       req.PickupDate,
			Email:            req.Email,
			PhoneNumber:      req.PhoneNumber,
		}).Return(s.quoteResult(), nil)

		rm, err := s.wizard.RetryQuote(s.ctx, flowKey)
		s.Require().NoError(err)
		s.Equal("quote_received", rm.Stage)
		s.False(rm.CanRetryQuote)
	})

	s.Run("error: nothing recorded to retry", func() {
		_, err := s.wizard.RetryQuote(s.ctx, "fresh-key")
		s.ErrorIs(err, commands.ErrNothingToRetry)
	})
}

func (s *WizardCommandsTestSuite) TestSaveDraft() {
	s.Run("success: draft saved after a quote", func() {
		state := builder.NewWizardBuilder().WithKey(flowKey).AtQuoteReceived().BuildDomain()
		s.Require().NoError(s.wizards.Save(s.ctx, state))

		rm, err := s.wizard.SaveDraft(s.ctx, flowKey, *builder.NewDraftBuilder().BuildDomain())
		s.Require().NoError(err)
		s.Equal("draft_started", rm.Stage)
		s.Require().NotNil(rm.Draft)
		s.Equal("Jordan Blake", rm.Draft.PickupContactName)
	})

	s.Run("error: draft without a quote", func() {
		_, err := s.wizard.SaveDraft(s.ctx, "fresh-key", *builder.NewDraftBuilder().BuildDomain())
		s.ErrorIs(err, wizard.ErrInvalidTransition)
	})
}

func (s *WizardCommandsTestSuite) TestSecure() {
	s.Run("success: secures the reservation upstream", func() {
		state := builder.NewWizardBuilder().WithKey(flowKey).AtDraftStarted().BuildDomain()
		s.Require().NoError(s.wizards.Save(s.ctx, state))

		s.reservations.EXPECT().Secure(gomock.Any(), "upstream-bearer-token", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, payload upstream.SecureReservationPayload) (*upstream.SecureReservationResult, error) {
				s.Equal("Q-20260815-0042", payload.QuoteReference)
				s.Equal("Jordan Blake", payload.PickupContactName)
				s.Equal("open", payload.CarrierType)
				return &upstream.SecureReservationResult{ReservationID: "RSV-7731"}, nil
			})

		rm, err := s.wizard.Secure(s.ctx, flowKey, "upstream-bearer-token")
		s.Require().NoError(err)
		s.Equal("reservation_secured", rm.Stage)
		s.Equal("RSV-7731", rm.ReservationID)
	})

	s.Run("error: no quote", func() {
		_, err := s.wizard.Secure(s.ctx, "fresh-key", "upstream-bearer-token")
		s.ErrorIs(err, wizard.ErrQuoteRequired)
	})

	s.Run("error: no draft", func() {
		state := builder.NewWizardBuilder().WithKey(flowKey).AtQuoteReceived().BuildDomain()
		s.Require().NoError(s.wizards.Save(s.ctx, state))

		_, err := s.wizard.Secure(s.ctx, flowKey, "upstream-bearer-token")
		s.ErrorIs(err, wizard.ErrInvalidTransition)
	})

	s.Run("error: draft missing required contact fields", func() {
		b := builder.NewWizardBuilder().WithKey(flowKey).AtDraftStarted()
		b.Draft.DeliveryContactName = ""
		s.Require().NoError(s.wizards.Save(s.ctx, b.BuildDomain()))

		_, err := s.wizard.Secure(s.ctx, flowKey, "upstream-bearer-token")
		s.ErrorIs(err, commands.ErrDraftIncomplete)
	})
}

func (s *WizardCommandsTestSuite) TestSelectProtection() {
	s.Run("success", func() {
		state := builder.NewWizardBuilder().WithKey(flowKey).AtReservationSecured().BuildDomain()
		s.Require().NoError(s.wizards.Save(s.ctx, state))

		rm, err := s.wizard.SelectProtection(s.ctx, flowKey, "premium")
		s.Require().NoError(err)
		s.Equal("protection_selected", rm.Stage)
		s.Equal("premium", rm.ProtectionPlan)
	})

	s.Run("error: no flow state", func() {
		_, err := s.wizard.SelectProtection(s.ctx, "fresh-key", "premium")
		s.ErrorIs(err, wizard.ErrQuoteRequired)
	})
}

func (s *WizardCommandsTestSuite) TestMarkHandoff() {
	s.Run("records the resume target even on fresh state", func() {
		s.Require().NoError(s.wizard.MarkHandoff(s.ctx, "fresh-key", "/reservation"))

		state, err := s.wizards.Find(s.ctx, "fresh-key")
		s.Require().NoError(err)
		s.Require().NotNil(state)
		s.Require().NotNil(state.ResumeTarget())
		s.Equal("/reservation", state.ResumeTarget().RedirectTo)
		s.Equal(wizard.FlowQuoteToReservation, state.ResumeTarget().Flow)
	})
}
