package response

import (
	"carhaul-portal/internal/usecase/readmodel"
)

type WizardStateResponse struct {
	State *readmodel.WizardStateRM `json:"state"`
}

func FromWizardState(rm *readmodel.WizardStateRM) *WizardStateResponse {
	return &WizardStateResponse{State: rm}
}

type CheckoutResponse struct {
	SessionID   string `json:"sessionId"`
	CheckoutURL string `json:"checkoutUrl"`
}

func FromCheckout(rm *readmodel.CheckoutRM) *CheckoutResponse {
	return &CheckoutResponse{SessionID: rm.SessionID, CheckoutURL: rm.CheckoutURL}
}

type PaymentStatusResponse struct {
	SessionID string `json:"sessionId"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	Outcome   string `json:"outcome"`
	Attempts  int    `json:"attempts,omitempty"`
}

func FromPaymentStatus(rm *readmodel.PaymentStatusRM) *PaymentStatusResponse {
	return &PaymentStatusResponse{
		SessionID: rm.SessionID,
		Status:    rm.Status,
		Message:   rm.Message,
		Outcome:   rm.Outcome,
		Attempts:  rm.Attempts,
	}
}
