package quote

import (
	"errors"
	"strings"
	"time"

	"carhaul-portal/internal/domain/user"
)

var (
	ErrMissingFields  = errors.New("required quote fields are missing")
	ErrInvalidYear    = errors.New("vehicle year is out of range")
	ErrInvalidDate    = errors.New("pickup date must be YYYY-MM-DD")
	ErrInvalidEmail   = user.ErrInvalidEmail
	ErrInvalidPhone   = user.ErrInvalidPhone
	ErrEmptyReference = errors.New("quote reference is required")
	ErrSameLocations  = errors.New("pickup and delivery locations must differ")
)

const dateLayout = "2006-01-02"

// MissingFieldsError reports every absent required field so the caller can
// surface them all at once instead of failing field by field.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}

// Request is a visitor's quote submission. Pricing happens upstream; the
// portal only guarantees the payload is complete and well-formed before the
// call is made.
type Request struct {
	PickupLocation   string
	DeliveryLocation string
	Brand            string
	Model            string
	Year             int
	PickupDate       string
	Email            string
	PhoneNumber      string
}

func (r Request) Validate(now time.Time) error {
	var missing []string
	if strings.TrimSpace(r.PickupLocation) == "" {
		missing = append(missing, "pickupLocation")
	}
	if strings.TrimSpace(r.DeliveryLocation) == "" {
		missing = append(missing, "deliveryLocation")
	}
	if strings.TrimSpace(r.Brand) == "" {
		missing = append(missing, "brand")
	}
	if strings.TrimSpace(r.Model) == "" {
		missing = append(missing, "model")
	}
	if r.Year == 0 {
		missing = append(missing, "year")
	}
	if strings.TrimSpace(r.PickupDate) == "" {
		missing = append(missing, "pickupDate")
	}
	if strings.TrimSpace(r.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(r.PhoneNumber) == "" {
		missing = append(missing, "phoneNumber")
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	if r.Year < 1900 || r.Year > now.Year()+1 {
		return ErrInvalidYear
	}
	if _, err := time.Parse(dateLayout, r.PickupDate); err != nil {
		return ErrInvalidDate
	}
	if _, err := user.NewEmail(r.Email); err != nil {
		return err
	}
	if _, err := user.NewPhone(r.PhoneNumber); err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(r.PickupLocation), strings.TrimSpace(r.DeliveryLocation)) {
		return ErrSameLocations
	}
	return nil
}
