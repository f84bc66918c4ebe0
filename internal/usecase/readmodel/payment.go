package readmodel

// Poll outcomes surfaced to the client. StillConfirming is deliberately not
// an error: the budget ran out without a terminal status and the flow stays
// where it is.
const (
	OutcomeConfirmed       = "confirmed"
	OutcomeDeclined        = "declined"
	OutcomeStillConfirming = "still_confirming"
)

type CheckoutRM struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

type PaymentStatusRM struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	Outcome   string `json:"outcome"`
	Attempts  int    `json:"attempts,omitempty"`
}
