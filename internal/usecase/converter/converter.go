// Package converter maps domain entities and upstream payloads onto the
// read models served to clients. Field-for-field copies go through copier;
// anything renamed or derived is set by hand.
package converter

import (
	"carhaul-portal/internal/domain/wizard"
	"carhaul-portal/internal/pkg/errs"
	"carhaul-portal/internal/upstream"
	"carhaul-portal/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

func QuoteResultToDomain(r *upstream.QuoteResult) (*wizard.Quote, error) {
	var q wizard.Quote
	if err := copier.Copy(&q, r); err != nil {
		return nil, errs.Wrap(err, "convert quote result")
	}
	q.Reference = r.QuoteReference
	return &q, nil
}

func WizardStateToRM(s *wizard.State) (*readmodel.WizardStateRM, error) {
	rm := &readmodel.WizardStateRM{
		Stage:            s.Stage().String(),
		ReservationID:    s.ReservationID(),
		ProtectionPlan:   s.ProtectionPlan(),
		PaymentSessionID: s.PaymentSessionID(),
		CanRetryQuote:    len(s.LastQuoteAttempt()) > 0,
		UpdatedAt:        s.UpdatedAt(),
	}
	if q := s.Quote(); q != nil {
		rm.Quote = &readmodel.QuoteRM{}
		if err := copier.Copy(rm.Quote, q); err != nil {
			return nil, errs.Wrap(err, "convert quote")
		}
	}
	if d := s.Draft(); d != nil {
		rm.Draft = &readmodel.DraftRM{}
		if err := copier.Copy(rm.Draft, d); err != nil {
			return nil, errs.Wrap(err, "convert draft")
		}
	}
	if t := s.ResumeTarget(); t != nil {
		rm.ResumeTarget = &readmodel.ResumeTargetRM{Flow: t.Flow, RedirectTo: t.RedirectTo}
	}
	return rm, nil
}

func SuggestionsToRM(in []upstream.Suggestion) []readmodel.SuggestionRM {
	out := make([]readmodel.SuggestionRM, len(in))
	for i, s := range in {
		out[i] = readmodel.SuggestionRM{Description: s.Description, PlaceID: s.PlaceID}
	}
	return out
}

func DirectionsToRM(d *upstream.Directions) *readmodel.DirectionsRM {
	return &readmodel.DirectionsRM{DistanceText: d.DistanceText, DurationText: d.DurationText}
}

func TrackingToRM(r *upstream.TrackingRecord) (*readmodel.TrackingRM, error) {
	var rm readmodel.TrackingRM
	if err := copier.Copy(&rm, r); err != nil {
		return nil, errs.Wrap(err, "convert tracking record")
	}
	return &rm, nil
}

func DashboardToRM(d *upstream.Dashboard) (*readmodel.DashboardRM, error) {
	var rm readmodel.DashboardRM
	if err := copier.Copy(&rm, d); err != nil {
		return nil, errs.Wrap(err, "convert dashboard")
	}
	if rm.Reservations == nil {
		rm.Reservations = []readmodel.DashboardReservationRM{}
	}
	return &rm, nil
}
