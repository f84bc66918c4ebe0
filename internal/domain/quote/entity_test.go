//go:build unit

package quote_test

import (
	"errors"
	"testing"
	"time"

	"carhaul-portal/internal/domain/quote"
	"carhaul-portal/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validationNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

type testCase struct {
	name   string
	mutate func(*builder.QuoteBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := builder.NewQuoteBuilder().With(tc.mutate).BuildRequest()
			err := req.Validate(validationNow)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequestValidate(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		req := builder.NewQuoteBuilder().BuildRequest()
		require.NoError(t, req.Validate(validationNow))
	})

	t.Run("reports all missing fields at once", func(t *testing.T) {
		err := quote.Request{}.Validate(validationNow)
		require.ErrorIs(t, err, quote.ErrMissingFields)

		var missing *quote.MissingFieldsError
		require.True(t, errors.As(err, &missing))
		assert.ElementsMatch(t, []string{
			"pickupLocation", "deliveryLocation", "brand", "model",
			"year", "pickupDate", "email", "phoneNumber",
		}, missing.Fields)
	})

	t.Run("reports only the absent fields", func(t *testing.T) {
		req := builder.NewQuoteBuilder().With(func(b *builder.QuoteBuilder) {
			b.Brand = ""
			b.Email = "   "
		}).BuildRequest()
		err := req.Validate(validationNow)

		var missing *quote.MissingFieldsError
		require.True(t, errors.As(err, &missing))
		assert.ElementsMatch(t, []string{"brand", "email"}, missing.Fields)
	})

	t.Run("year validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum valid year",
				mutate: func(b *builder.QuoteBuilder) { b.Year = 1900 },
			},
			{
				name:   "below minimum year",
				mutate: func(b *builder.QuoteBuilder) { b.Year = 1899 },
				errIs:  quote.ErrInvalidYear,
			},
			{
				name:   "next model year is allowed",
				mutate: func(b *builder.QuoteBuilder) { b.Year = validationNow.Year() + 1 },
			},
			{
				name:   "two years ahead is rejected",
				mutate: func(b *builder.QuoteBuilder) { b.Year = validationNow.Year() + 2 },
				errIs:  quote.ErrInvalidYear,
			},
		})
	})

	t.Run("pickup date validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "well-formed date",
				mutate: func(b *builder.QuoteBuilder) { b.PickupDate = "2026-12-01" },
			},
			{
				name:   "wrong layout",
				mutate: func(b *builder.QuoteBuilder) { b.PickupDate = "12/01/2026" },
				errIs:  quote.ErrInvalidDate,
			},
			{
				name:   "impossible calendar date",
				mutate: func(b *builder.QuoteBuilder) { b.PickupDate = "2026-02-30" },
				errIs:  quote.ErrInvalidDate,
			},
		})
	})

	t.Run("contact validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "malformed email",
				mutate: func(b *builder.QuoteBuilder) { b.Email = "not-an-email" },
				errIs:  quote.ErrInvalidEmail,
			},
			{
				name:   "malformed phone",
				mutate: func(b *builder.QuoteBuilder) { b.PhoneNumber = "abc" },
				errIs:  quote.ErrInvalidPhone,
			},
		})
	})

	t.Run("same locations", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "identical pickup and delivery",
				mutate: func(b *builder.QuoteBuilder) {
					b.PickupLocation = "Austin, TX"
					b.DeliveryLocation = "Austin, TX"
				},
				errIs: quote.ErrSameLocations,
			},
			{
				name: "case and whitespace insensitive comparison",
				mutate: func(b *builder.QuoteBuilder) {
					b.PickupLocation = "Austin, TX"
					b.DeliveryLocation = "  austin, tx "
				},
				errIs: quote.ErrSameLocations,
			},
		})
	})
}
