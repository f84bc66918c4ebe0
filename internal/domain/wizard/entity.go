package wizard

import (
	"errors"
	"time"
)

var (
	ErrInvalidTransition = errors.New("invalid wizard transition")
	ErrQuoteRequired     = errors.New("a quote is required before this step")
	ErrPaymentInFlight   = errors.New("a payment is already in flight")
	ErrNoPaymentSession  = errors.New("no payment session to confirm")
	ErrInvalidCarrier    = errors.New("invalid carrier type")
	ErrInvalidCondition  = errors.New("invalid vehicle condition")
	ErrProtectionNeeded  = errors.New("a protection plan must be selected")
)

// TransitionError carries the stage the client should resume from, the
// server-side analogue of "redirect to an earlier step and show a toast".
type TransitionError struct {
	Op     string
	Stage  Stage
	Resume Stage
}

func (e *TransitionError) Error() string {
	return "cannot " + e.Op + " at stage " + e.Stage.String() + "; resume at " + e.Resume.String()
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// Quote is the priced estimate returned by the upstream core API. Reference
// correlates every later step of the flow. Amounts are kept in cents.
type Quote struct {
	Reference              string `json:"reference"`
	PickupLocation         string `json:"pickup_location"`
	DeliveryLocation       string `json:"delivery_location"`
	Brand                  string `json:"brand"`
	Model                  string `json:"model"`
	Year                   int    `json:"year"`
	PickupDate             string `json:"pickup_date"`
	DeliveryDate           string `json:"delivery_date"`
	PriceCents             int64  `json:"price_cents"`
	DownPaymentCents       int64  `json:"down_payment_cents"`
	BalanceOnDeliveryCents int64  `json:"balance_on_delivery_cents"`
}

// Draft accumulates pickup/delivery contact details across the reservation
// form steps. Write-once: consumed by securing the reservation upstream.
type Draft struct {
	PickupContactName    string           `json:"pickup_contact_name"`
	PickupContactPhone   string           `json:"pickup_contact_phone"`
	PickupAddress        string           `json:"pickup_address"`
	DeliveryContactName  string           `json:"delivery_contact_name"`
	DeliveryContactPhone string           `json:"delivery_contact_phone"`
	DeliveryAddress      string           `json:"delivery_address"`
	CarrierType          CarrierType      `json:"carrier_type"`
	VehicleCondition     VehicleCondition `json:"vehicle_condition"`
	ShipmentDate         string           `json:"shipment_date"`
	ConsentToContact     bool             `json:"consent_to_contact"`
}

type ResumeTarget struct {
	Flow       string `json:"flow"`
	RedirectTo string `json:"redirect_to"`
}

// State is one visitor's (or one session's) position in the reservation flow.
type State struct {
	key              string
	stage            Stage
	quote            *Quote
	draft            *Draft
	reservationID    string
	protectionPlan   string
	paymentSessionID string
	lastQuoteAttempt []byte
	resumeTarget     *ResumeTarget
	updatedAt        time.Time
}

func NewState(key string) *State {
	return &State{
		key:   key,
		stage: StageNoQuote,
	}
}

func ReconstructState(
	key string,
	stage Stage,
	quote *Quote,
	draft *Draft,
	reservationID, protectionPlan, paymentSessionID string,
	lastQuoteAttempt []byte,
	resumeTarget *ResumeTarget,
	updatedAt time.Time,
) *State {
	return &State{
		key:              key,
		stage:            stage,
		quote:            quote,
		draft:            draft,
		reservationID:    reservationID,
		protectionPlan:   protectionPlan,
		paymentSessionID: paymentSessionID,
		lastQuoteAttempt: lastQuoteAttempt,
		resumeTarget:     resumeTarget,
		updatedAt:        updatedAt,
	}
}

// AttachQuote accepts a fresh quote at any point except while a payment is
// pending; re-quoting restarts the flow.
func (s *State) AttachQuote(q *Quote) error {
	if q == nil || q.Reference == "" {
		return ErrQuoteRequired
	}
	if s.stage == StagePaymentPending {
		return ErrPaymentInFlight
	}
	s.quote = q
	s.draft = nil
	s.reservationID = ""
	s.protectionPlan = ""
	s.paymentSessionID = ""
	s.lastQuoteAttempt = nil
	s.stage = StageQuoteReceived
	return nil
}

// RecordQuoteFailure keeps the last failed quote payload for the manual
// retry affordance.
func (s *State) RecordQuoteFailure(payload []byte) {
	s.lastQuoteAttempt = payload
}

func (s *State) UpdateDraft(d *Draft) error {
	if s.quote == nil {
		return &TransitionError{Op: "update draft", Stage: s.stage, Resume: StageNoQuote}
	}
	if s.stage != StageQuoteReceived && s.stage != StageDraftStarted {
		return &TransitionError{Op: "update draft", Stage: s.stage, Resume: StageQuoteReceived}
	}
	if d.CarrierType != "" && !d.CarrierType.IsValid() {
		return ErrInvalidCarrier
	}
	if d.VehicleCondition != "" && !d.VehicleCondition.IsValid() {
		return ErrInvalidCondition
	}
	s.draft = d
	s.stage = StageDraftStarted
	return nil
}

func (s *State) MarkSecured(reservationID string) error {
	if s.stage != StageDraftStarted {
		return &TransitionError{Op: "secure reservation", Stage: s.stage, Resume: StageQuoteReceived}
	}
	s.reservationID = reservationID
	s.stage = StageReservationSecured
	return nil
}

// SelectProtection is also the re-entry point after a failed payment.
func (s *State) SelectProtection(plan string) error {
	if s.stage != StageReservationSecured && s.stage != StageProtectionSelected && s.stage != StagePaymentFailed {
		return &TransitionError{Op: "select protection", Stage: s.stage, Resume: StageDraftStarted}
	}
	if plan == "" {
		return ErrProtectionNeeded
	}
	s.protectionPlan = plan
	s.stage = StageProtectionSelected
	return nil
}

func (s *State) StartPayment(paymentSessionID string) error {
	if s.stage != StageProtectionSelected {
		return &TransitionError{Op: "start payment", Stage: s.stage, Resume: StageReservationSecured}
	}
	s.paymentSessionID = paymentSessionID
	s.stage = StagePaymentPending
	return nil
}

// ObservePayment applies a polled payment status. Non-terminal statuses leave
// the stage untouched so polling can continue or be re-entered later.
func (s *State) ObservePayment(status PaymentStatus) error {
	if s.stage != StagePaymentPending {
		return &TransitionError{Op: "confirm payment", Stage: s.stage, Resume: StageProtectionSelected}
	}
	if s.paymentSessionID == "" {
		return ErrNoPaymentSession
	}
	if !status.Terminal() {
		return nil
	}
	if status.Succeeded() {
		s.stage = StagePaymentSucceeded
	} else {
		s.stage = StagePaymentFailed
		s.paymentSessionID = ""
	}
	return nil
}

func (s *State) SetResumeTarget(redirectTo string) {
	s.resumeTarget = &ResumeTarget{Flow: FlowQuoteToReservation, RedirectTo: redirectTo}
}

// ConsumeResumeTarget returns and clears the pending redirect; the slot holds
// at most one target and is consumed exactly once.
func (s *State) ConsumeResumeTarget() *ResumeTarget {
	t := s.resumeTarget
	s.resumeTarget = nil
	return t
}

func (s *State) Rekey(key string) {
	s.key = key
}

func (s *State) Touch(now time.Time) {
	s.updatedAt = now
}

func (s *State) Key() string              { return s.key }
func (s *State) Stage() Stage             { return s.stage }
func (s *State) Quote() *Quote            { return s.quote }
func (s *State) Draft() *Draft            { return s.draft }
func (s *State) ReservationID() string    { return s.reservationID }
func (s *State) ProtectionPlan() string   { return s.protectionPlan }
func (s *State) PaymentSessionID() string { return s.paymentSessionID }
func (s *State) LastQuoteAttempt() []byte { return s.lastQuoteAttempt }
func (s *State) ResumeTarget() *ResumeTarget {
	return s.resumeTarget
}
func (s *State) UpdatedAt() time.Time { return s.updatedAt }
