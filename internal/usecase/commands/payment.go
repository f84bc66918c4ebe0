package commands

import (
	"context"
	"strings"
	"time"

	"carhaul-portal/internal/domain/wizard"
	"carhaul-portal/internal/pkg/clock"
	"carhaul-portal/internal/pkg/config"
	"carhaul-portal/internal/pkg/errs"
	"carhaul-portal/internal/usecase/readmodel"
	"carhaul-portal/internal/usecase/shared"
)

var ErrCheckoutUnavailable = errs.New("payment checkout is unavailable")

// PaymentCommands runs checkout and status confirmation. Await polls at a
// fixed interval with a bounded attempt budget; exhausting the budget is
// reported as still_confirming, not as an error.
type PaymentCommands struct {
	payments PaymentGateway
	wizards  shared.WizardStore
	clk      clock.Clock
	cfg      config.PaymentConfig
}

func NewPaymentCommands(
	payments PaymentGateway,
	wizards shared.WizardStore,
	clk clock.Clock,
	cfg config.PaymentConfig,
) *PaymentCommands {
	return &PaymentCommands{
		payments: payments,
		wizards:  wizards,
		clk:      clk,
		cfg:      cfg,
	}
}

func (p *PaymentCommands) StartCheckout(ctx context.Context, key, upstreamToken string) (*readmodel.CheckoutRM, error) {
	state, err := p.wizards.Find(ctx, key)
	if err != nil {
		return nil, errs.Wrap(err, "load flow state")
	}
	if state == nil {
		return nil, wizard.ErrQuoteRequired
	}
	if state.ReservationID() == "" {
		return nil, &wizard.TransitionError{Op: "start payment", Stage: state.Stage(), Resume: wizard.StageDraftStarted}
	}

	checkout, err := p.payments.CreateCheckout(ctx, upstreamToken, state.ReservationID())
	if err != nil {
		return nil, errs.Mark(err, ErrCheckoutUnavailable)
	}

	if err := state.StartPayment(checkout.SessionID); err != nil {
		return nil, err
	}
	state.Touch(p.clk.Now())
	if err := p.wizards.Save(ctx, state); err != nil {
		return nil, errs.Wrap(err, "persist flow state")
	}

	return &readmodel.CheckoutRM{
		SessionID:   checkout.SessionID,
		CheckoutURL: checkout.CheckoutURL,
	}, nil
}

// Probe checks the payment status once and applies it to the flow state.
func (p *PaymentCommands) Probe(ctx context.Context, key, upstreamToken string) (*readmodel.PaymentStatusRM, error) {
	state, err := p.wizards.Find(ctx, key)
	if err != nil {
		return nil, errs.Wrap(err, "load flow state")
	}
	if state == nil || state.PaymentSessionID() == "" {
		return nil, wizard.ErrNoPaymentSession
	}

	rm, _, err := p.probeOnce(ctx, upstreamToken, state)
	if err != nil {
		return nil, err
	}
	state.Touch(p.clk.Now())
	if err := p.wizards.Save(ctx, state); err != nil {
		return nil, errs.Wrap(err, "persist flow state")
	}
	return rm, nil
}

// Await polls until the status turns terminal, the attempt budget runs out,
// or the caller goes away. The flow stage only advances on a terminal status;
// a still_confirming result leaves it at payment_pending for a later Probe.
func (p *PaymentCommands) Await(ctx context.Context, key, upstreamToken string) (*readmodel.PaymentStatusRM, error) {
	state, err := p.wizards.Find(ctx, key)
	if err != nil {
		return nil, errs.Wrap(err, "load flow state")
	}
	if state == nil || state.PaymentSessionID() == "" {
		return nil, wizard.ErrNoPaymentSession
	}

	var rm *readmodel.PaymentStatusRM
	for attempt := 1; attempt <= p.cfg.MaxPollAttempts; attempt++ {
		var terminal bool
		rm, terminal, err = p.probeOnce(ctx, upstreamToken, state)
		if err != nil {
			return nil, err
		}
		rm.Attempts = attempt
		if terminal {
			break
		}
		if attempt == p.cfg.MaxPollAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errs.Wrap(ctx.Err(), "await payment")
		case <-time.After(p.cfg.PollInterval):
		}
	}

	state.Touch(p.clk.Now())
	if err := p.wizards.Save(ctx, state); err != nil {
		return nil, errs.Wrap(err, "persist flow state")
	}
	return rm, nil
}

func (p *PaymentCommands) probeOnce(ctx context.Context, upstreamToken string, state *wizard.State) (*readmodel.PaymentStatusRM, bool, error) {
	result, err := p.payments.Status(ctx, upstreamToken, state.PaymentSessionID())
	if err != nil {
		return nil, false, errs.Wrap(err, "payment status upstream")
	}

	status := wizard.PaymentStatus(strings.ToUpper(result.Status))
	if status.Terminal() {
		if err := state.ObservePayment(status); err != nil {
			return nil, false, err
		}
	}

	return &readmodel.PaymentStatusRM{
		SessionID: result.SessionID,
		Status:    string(status),
		Message:   result.Message,
		Outcome:   outcomeOf(status),
	}, status.Terminal(), nil
}

func outcomeOf(status wizard.PaymentStatus) string {
	switch {
	case status.Succeeded():
		return readmodel.OutcomeConfirmed
	case status.Terminal():
		return readmodel.OutcomeDeclined
	default:
		return readmodel.OutcomeStillConfirming
	}
}
