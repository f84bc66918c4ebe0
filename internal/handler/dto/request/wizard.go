package request

import (
	"carhaul-portal/internal/domain/wizard"
)

type DraftRequest struct {
	PickupContactName    string `json:"pickupContactName"`
	PickupContactPhone   string `json:"pickupContactPhone"`
	PickupAddress        string `json:"pickupAddress"`
	DeliveryContactName  string `json:"deliveryContactName"`
	DeliveryContactPhone string `json:"deliveryContactPhone"`
	DeliveryAddress      string `json:"deliveryAddress"`
	CarrierType          string `json:"carrierType"`
	VehicleCondition     string `json:"vehicleCondition"`
	ShipmentDate         string `json:"shipmentDate"`
	ConsentToContact     bool   `json:"consentToContact"`
}

func (r DraftRequest) ToDomain() wizard.Draft {
	return wizard.Draft{
		PickupContactName:    r.PickupContactName,
		PickupContactPhone:   r.PickupContactPhone,
		PickupAddress:        r.PickupAddress,
		DeliveryContactName:  r.DeliveryContactName,
		DeliveryContactPhone: r.DeliveryContactPhone,
		DeliveryAddress:      r.DeliveryAddress,
		CarrierType:          wizard.CarrierType(r.CarrierType),
		VehicleCondition:     wizard.VehicleCondition(r.VehicleCondition),
		ShipmentDate:         r.ShipmentDate,
		ConsentToContact:     r.ConsentToContact,
	}
}

type ProtectionRequest struct {
	Plan string `json:"plan" binding:"required"`
}

type HandoffRequest struct {
	RedirectTo string `json:"redirectTo" binding:"required"`
}
