//go:build unit

package queries_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"carhaul-portal/internal/upstream"
	"carhaul-portal/internal/usecase/queries"
	querymock "carhaul-portal/tests/mock/query"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TrackingQueriesTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	gateway  *querymock.MockTrackingGateway
	tracking *queries.TrackingQueries
}

func (s *TrackingQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = querymock.NewMockTrackingGateway(s.mockCtrl)
	s.tracking = queries.NewTrackingQueries(s.gateway)
}

func (s *TrackingQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrackingQueriesSuite(t *testing.T) {
	suite.Run(t, new(TrackingQueriesTestSuite))
}

func (s *TrackingQueriesTestSuite) TestStatus() {
	record := &upstream.TrackingRecord{
		QuoteReference:  "Q-20260815-0042",
		PickupAddress:   "600 Congress Ave, Austin, TX",
		DeliveryAddress: "1701 Wynkoop St, Denver, CO",
		PickupDate:      "2026-09-15",
		ShipmentStatus:  "in_transit",
		DeliveryStatus:  "pending",
		TransitProgress: 62,
		CreatedAt:       time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}

	s.Run("success: returns the shipment record", func() {
		s.gateway.EXPECT().Status(gomock.Any(), "upstream-bearer-token", "Q-20260815-0042").
			Return(record, nil).Times(1)

		rm, err := s.tracking.Status(s.ctx, "upstream-bearer-token", "Q-20260815-0042")
		s.Require().NoError(err)
		s.Equal("Q-20260815-0042", rm.QuoteReference)
		s.Equal("in_transit", rm.ShipmentStatus)
		s.Equal(62, rm.TransitProgress)
	})

	s.Run("error: empty reference is rejected before the upstream call", func() {
		_, err := s.tracking.Status(s.ctx, "upstream-bearer-token", "")
		s.ErrorIs(err, queries.ErrReferenceRequired)
	})

	s.Run("error: unknown reference", func() {
		s.gateway.EXPECT().Status(gomock.Any(), gomock.Any(), "Q-99999999-0000").
			Return(nil, &upstream.Error{Status: http.StatusNotFound, Message: "not found"}).Times(1)

		_, err := s.tracking.Status(s.ctx, "upstream-bearer-token", "Q-99999999-0000")
		s.ErrorIs(err, queries.ErrTrackingNotFound)
	})

	s.Run("error: someone else's shipment", func() {
		s.gateway.EXPECT().Status(gomock.Any(), gomock.Any(), "Q-20260815-0042").
			Return(nil, &upstream.Error{Status: http.StatusForbidden, Message: "forbidden"}).Times(1)

		_, err := s.tracking.Status(s.ctx, "upstream-bearer-token", "Q-20260815-0042")
		s.ErrorIs(err, queries.ErrTrackingForbidden)
	})

	s.Run("error: other upstream failures pass through unmarked", func() {
		s.gateway.EXPECT().Status(gomock.Any(), gomock.Any(), "Q-20260815-0042").
			Return(nil, &upstream.Error{Status: http.StatusBadGateway, Message: "core api down"}).Times(1)

		_, err := s.tracking.Status(s.ctx, "upstream-bearer-token", "Q-20260815-0042")
		s.Require().Error(err)
		s.NotErrorIs(err, queries.ErrTrackingNotFound)
		s.NotErrorIs(err, queries.ErrTrackingForbidden)
	})
}
