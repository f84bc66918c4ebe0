package wizard

// Stage is the explicit reservation-flow state. The browser client this
// replaces kept the same progression implicitly in route state and session
// storage; here it is a single tagged value with guarded transitions.
type Stage string

const (
	StageNoQuote            Stage = "no_quote"
	StageQuoteReceived      Stage = "quote_received"
	StageDraftStarted       Stage = "draft_started"
	StageReservationSecured Stage = "reservation_secured"
	StageProtectionSelected Stage = "protection_selected"
	StagePaymentPending     Stage = "payment_pending"
	StagePaymentSucceeded   Stage = "payment_succeeded"
	StagePaymentFailed      Stage = "payment_failed"
)

func (s Stage) String() string {
	return string(s)
}

func (s Stage) IsValid() bool {
	switch s {
	case StageNoQuote, StageQuoteReceived, StageDraftStarted, StageReservationSecured,
		StageProtectionSelected, StagePaymentPending, StagePaymentSucceeded, StagePaymentFailed:
		return true
	default:
		return false
	}
}

func (s Stage) Terminal() bool {
	return s == StagePaymentSucceeded
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentSucceeded PaymentStatus = "SUCCEEDED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentCanceled  PaymentStatus = "CANCELED"
	PaymentRejected  PaymentStatus = "REJECTED"
	PaymentExpired   PaymentStatus = "EXPIRED"
)

func (p PaymentStatus) Terminal() bool {
	switch p {
	case PaymentSucceeded, PaymentFailed, PaymentCanceled, PaymentRejected, PaymentExpired:
		return true
	default:
		return false
	}
}

func (p PaymentStatus) Succeeded() bool {
	return p == PaymentSucceeded
}

type CarrierType string

const (
	CarrierOpen     CarrierType = "open"
	CarrierEnclosed CarrierType = "enclosed"
)

func (c CarrierType) IsValid() bool {
	return c == CarrierOpen || c == CarrierEnclosed
}

type VehicleCondition string

const (
	ConditionRunning    VehicleCondition = "running"
	ConditionInoperable VehicleCondition = "inoperable"
)

func (v VehicleCondition) IsValid() bool {
	return v == ConditionRunning || v == ConditionInoperable
}

// FlowQuoteToReservation marks a resume target set when an unauthenticated
// visitor with a quote is sent through login.
const FlowQuoteToReservation = "quote_to_reservation"
