package readmodel

import "time"

type QuoteRM struct {
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

type DraftRM struct {
	PickupContactName    string `json:"pickup_contact_name"`
	PickupContactPhone   string `json:"pickup_contact_phone"`
	PickupAddress        string `json:"pickup_address"`
	DeliveryContactName  string `json:"delivery_contact_name"`
	DeliveryContactPhone string `json:"delivery_contact_phone"`
	DeliveryAddress      string `json:"delivery_address"`
	CarrierType          string `json:"carrier_type"`
	VehicleCondition     string `json:"vehicle_condition"`
	ShipmentDate         string `json:"shipment_date"`
	ConsentToContact     bool   `json:"consent_to_contact"`
}

type ResumeTargetRM struct {
	Flow       string `json:"flow"`
	RedirectTo string `json:"redirect_to"`
}

type WizardStateRM struct {
	Stage            string          `json:"stage"`
	Quote            *QuoteRM        `json:"quote,omitempty"`
	Draft            *DraftRM        `json:"draft,omitempty"`
	ReservationID    string          `json:"reservation_id,omitempty"`
	ProtectionPlan   string          `json:"protection_plan,omitempty"`
	PaymentSessionID string          `json:"payment_session_id,omitempty"`
	ResumeTarget     *ResumeTargetRM `json:"resume_target,omitempty"`
	CanRetryQuote    bool            `json:"can_retry_quote"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
