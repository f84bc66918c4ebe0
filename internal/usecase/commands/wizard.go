package commands

import (
	"context"
	"encoding/json"

	"carhaul-portal/internal/domain/quote"
	"carhaul-portal/internal/domain/wizard"
	"carhaul-portal/internal/pkg/clock"
	"carhaul-portal/internal/pkg/errs"
	"carhaul-portal/internal/upstream"
	"carhaul-portal/internal/usecase/converter"
	"carhaul-portal/internal/usecase/readmodel"
	"carhaul-portal/internal/usecase/shared"
)

var (
	ErrQuoteUnavailable = errs.New("quote service is unavailable")
	ErrNothingToRetry   = errs.New("no failed quote request to retry")
	ErrDraftIncomplete  = errs.New("reservation details are incomplete")
)

// WizardCommands drives the reservation flow state machine. Every mutation
// loads state by key, applies a domain transition, and persists the result;
// the key is a visitor cookie before login and the session ID after.
type WizardCommands struct {
	quotes       QuoteGateway
	reservations ReservationGateway
	wizards      shared.WizardStore
	clk          clock.Clock
}

func NewWizardCommands(
	quotes QuoteGateway,
	reservations ReservationGateway,
	wizards shared.WizardStore,
	clk clock.Clock,
) *WizardCommands {
	return &WizardCommands{
		quotes:       quotes,
		reservations: reservations,
		wizards:      wizards,
		clk:          clk,
	}
}

func (w *WizardCommands) loadOrCreate(ctx context.Context, key string) (*wizard.State, error) {
	state, err := w.wizards.Find(ctx, key)
	if err != nil {
		return nil, errs.Wrap(err, "load flow state")
	}
	if state == nil {
		state = wizard.NewState(key)
	}
	return state, nil
}

func (w *WizardCommands) save(ctx context.Context, state *wizard.State) error {
	state.Touch(w.clk.Now())
	if err := w.wizards.Save(ctx, state); err != nil {
		return errs.Wrap(err, "persist flow state")
	}
	return nil
}

// RequestQuote validates the submission, prices it upstream, and attaches the
// result. An upstream failure is recorded on the state so the client can offer
// a retry without re-entering the form.
func (w *WizardCommands) RequestQuote(ctx context.Context, key string, req quote.Request) (*readmodel.WizardStateRM, error) {
	if err := req.Validate(w.clk.Now()); err != nil {
		return nil, err
	}

	state, err := w.loadOrCreate(ctx, key)
	if err != nil {
		return nil, err
	}

	payload := upstream.QuotePayload{
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
		Brand:            req.Brand,
		Model:            req.Model,
		Year:             req.Year,
		PickupDate:       req.PickupDate,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
	}

	result, err := w.quotes.CreateVisitorQuote(ctx, payload)
	if err != nil {
		raw, marshalErr := json.Marshal(payload)
		if marshalErr == nil {
			state.RecordQuoteFailure(raw)
			if saveErr := w.save(ctx, state); saveErr != nil {
				return nil, saveErr
			}
		}
		return nil, errs.Mark(err, ErrQuoteUnavailable)
	}

	q, err := converter.QuoteResultToDomain(result)
	if err != nil {
		return nil, err
	}
	if err := state.AttachQuote(q); err != nil {
		return nil, err
	}
	if err := w.save(ctx, state); err != nil {
		return nil, err
	}
	return converter.WizardStateToRM(state)
}

// RetryQuote replays the last failed submission verbatim.
func (w *WizardCommands) RetryQuote(ctx context.Context, key string) (*readmodel.WizardStateRM, error) {
	state, err := w.wizards.Find(ctx, key)
	if err != nil {
		return nil, errs.Wrap(err, "load flow state")
	}
	if state == nil || len(state.LastQuoteAttempt()) == 0 {
		return nil, ErrNothingToRetry
	}

	var payload upstream.QuotePayload
	if err := json.Unmarshal(state.LastQuoteAttempt(), &payload); err != nil {
		return nil, errs.Wrap(err, "decode retry payload")
	}

	result, err := w.quotes.CreateVisitorQuote(ctx, payload)
	if err != nil {
		return nil, errs.Mark(err, ErrQuoteUnavailable)
	}

	q, err := converter.QuoteResultToDomain(result)
	if err != nil {
		return nil, err
	}
	if err := state.AttachQuote(q); err != nil {
		return nil, err
	}
	if err := w.save(ctx, state); err != nil {
		return nil, err
	}
	return converter.WizardStateToRM(state)
}

func (w *WizardCommands) SaveDraft(ctx context.Context, key string, draft wizard.Draft) (*readmodel.WizardStateRM, error) {
	state, err := w.loadOrCreate(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := state.UpdateDraft(&draft); err != nil {
		return nil, err
	}
	if err := w.save(ctx, state); err != nil {
		return nil, err
	}
	return converter.WizardStateToRM(state)
}

// Secure submits the accumulated draft upstream under the user's token and
// records the reservation on success.
func (w *WizardCommands) Secure(ctx context.Context, key, upstreamToken string) (*readmodel.WizardStateRM, error) {
	state, err := w.wizards.Find(ctx, key)
	if err != nil {
		return nil, errs.Wrap(err, "load flow state")
	}
	if state == nil || state.Quote() == nil {
		return nil, wizard.ErrQuoteRequired
	}
	draft := state.Draft()
	if draft == nil {
		return nil, &wizard.TransitionError{Op: "secure reservation", Stage: state.Stage(), Resume: wizard.StageQuoteReceived}
	}
	if draft.PickupContactName == "" || draft.DeliveryContactName == "" || draft.ShipmentDate == "" {
		return nil, ErrDraftIncomplete
	}

	result, err := w.reservations.Secure(ctx, upstreamToken, upstream.SecureReservationPayload{
		QuoteReference:       state.Quote().Reference,
		PickupContactName:    draft.PickupContactName,
		PickupContactPhone:   draft.PickupContactPhone,
		PickupAddress:        draft.PickupAddress,
		DeliveryContactName:  draft.DeliveryContactName,
		DeliveryContactPhone: draft.DeliveryContactPhone,
		DeliveryAddress:      draft.DeliveryAddress,
		CarrierType:          string(draft.CarrierType),
		VehicleCondition:     string(draft.VehicleCondition),
		ShipmentDate:         draft.ShipmentDate,
		ConsentToContact:     draft.ConsentToContact,
	})
	if err != nil {
		return nil, errs.Wrap(err, "secure reservation upstream")
	}

	if err := state.MarkSecured(result.ReservationID); err != nil {
		return nil, err
	}
	if err := w.save(ctx, state); err != nil {
		return nil, err
	}
	return converter.WizardStateToRM(state)
}

func (w *WizardCommands) SelectProtection(ctx context.Context, key, plan string) (*readmodel.WizardStateRM, error) {
	state, err := w.wizards.Find(ctx, key)
	if err != nil {
		return nil, errs.Wrap(err, "load flow state")
	}
	if state == nil {
		return nil, wizard.ErrQuoteRequired
	}
	if err := state.SelectProtection(plan); err != nil {
		return nil, err
	}
	if err := w.save(ctx, state); err != nil {
		return nil, err
	}
	return converter.WizardStateToRM(state)
}

// MarkHandoff records where an anonymous visitor should land after logging
// in. Called when the flow reaches a step that requires an account.
func (w *WizardCommands) MarkHandoff(ctx context.Context, key, redirectTo string) error {
	state, err := w.loadOrCreate(ctx, key)
	if err != nil {
		return err
	}
	state.SetResumeTarget(redirectTo)
	return w.save(ctx, state)
}
