//go:build unit || e2e

package builder

import (
	"time"

	"carhaul-portal/internal/domain/wizard"
)

// WizardBuilder reconstructs flow state at an arbitrary stage so tests can
// start mid-flow without replaying every transition.
type WizardBuilder struct {
	Key              string
	Stage            wizard.Stage
	Quote            *wizard.Quote
	Draft            *wizard.Draft
	ReservationID    string
	ProtectionPlan   string
	PaymentSessionID string
	ResumeTarget     *wizard.ResumeTarget
	UpdatedAt        time.Time
}

func NewWizardBuilder() *WizardBuilder {
	return &WizardBuilder{
		Key:       "visitor-key",
		Stage:     wizard.StageNoQuote,
		UpdatedAt: time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (w *WizardBuilder) WithKey(key string) *WizardBuilder {
	w.Key = key
	return w
}

func (w *WizardBuilder) AtQuoteReceived() *WizardBuilder {
	w.Stage = wizard.StageQuoteReceived
	w.Quote = NewQuoteBuilder().BuildDomain()
	return w
}

func (w *WizardBuilder) AtDraftStarted() *WizardBuilder {
	w.AtQuoteReceived()
	w.Stage = wizard.StageDraftStarted
	w.Draft = NewDraftBuilder().BuildDomain()
	return w
}

func (w *WizardBuilder) AtReservationSecured() *WizardBuilder {
	w.AtDraftStarted()
	w.Stage = wizard.StageReservationSecured
	w.ReservationID = "RSV-7731"
	return w
}

func (w *WizardBuilder) AtProtectionSelected() *WizardBuilder {
	w.AtReservationSecured()
	w.Stage = wizard.StageProtectionSelected
	w.ProtectionPlan = "standard"
	return w
}

func (w *WizardBuilder) AtPaymentPending() *WizardBuilder {
	w.AtProtectionSelected()
	w.Stage = wizard.StagePaymentPending
	w.PaymentSessionID = "cs_test_8842"
	return w
}

func (w *WizardBuilder) WithResumeTarget(redirectTo string) *WizardBuilder {
	w.ResumeTarget = &wizard.ResumeTarget{Flow: wizard.FlowQuoteToReservation, RedirectTo: redirectTo}
	return w
}

func (w *WizardBuilder) BuildDomain() *wizard.State {
	return wizard.ReconstructState(
		w.Key,
		w.Stage,
		w.Quote,
		w.Draft,
		w.ReservationID,
		w.ProtectionPlan,
		w.PaymentSessionID,
		nil,
		w.ResumeTarget,
		w.UpdatedAt,
	)
}

type DraftBuilder struct {
	PickupContactName    string
	PickupContactPhone   string
	PickupAddress        string
	DeliveryContactName  string
	DeliveryContactPhone string
	DeliveryAddress      string
	CarrierType          wizard.CarrierType
	VehicleCondition     wizard.VehicleCondition
	ShipmentDate         string
	ConsentToContact     bool
}

func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		PickupContactName:    "Jordan Blake",
		PickupContactPhone:   "+15125550142",
		PickupAddress:        "600 Congress Ave, Austin, TX",
		DeliveryContactName:  "Casey Morgan",
		DeliveryContactPhone: "+13035550177",
		DeliveryAddress:      "1701 Wynkoop St, Denver, CO",
		CarrierType:          wizard.CarrierOpen,
		VehicleCondition:     wizard.ConditionRunning,
		ShipmentDate:         "2026-09-15",
		ConsentToContact:     true,
	}
}

func (d *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(d)
	return d
}

func (d *DraftBuilder) BuildDomain() *wizard.Draft {
	return &wizard.Draft{
		PickupContactName:    d.PickupContactName,
		PickupContactPhone:   d.PickupContactPhone,
		PickupAddress:        d.PickupAddress,
		DeliveryContactName:  d.DeliveryContactName,
		DeliveryContactPhone: d.DeliveryContactPhone,
		DeliveryAddress:      d.DeliveryAddress,
		CarrierType:          d.CarrierType,
		VehicleCondition:     d.VehicleCondition,
		ShipmentDate:         d.ShipmentDate,
		ConsentToContact:     d.ConsentToContact,
	}
}
