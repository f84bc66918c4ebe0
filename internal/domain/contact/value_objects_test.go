//go:build unit

package contact_test

import (
	"strings"
	"testing"

	"carhaul-portal/internal/domain/contact"
	"carhaul-portal/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		msg, err := contact.NewMessage(
			"Jordan Blake",
			"jordan@example.com",
			"+15125550142",
			"When will my car arrive in Denver?",
		)
		require.NoError(t, err)

		assert.Equal(t, "Jordan Blake", msg.Name())
		assert.Equal(t, "jordan@example.com", msg.Email())
		assert.Equal(t, "15125550142", msg.Phone())
		assert.Equal(t, "When will my car arrive in Denver?", msg.Body())
	})

	t.Run("trims name and body", func(t *testing.T) {
		msg, err := contact.NewMessage(
			"  Jordan Blake  ",
			"jordan@example.com",
			"+15125550142",
			"  padded message body  ",
		)
		require.NoError(t, err)

		assert.Equal(t, "Jordan Blake", msg.Name())
		assert.Equal(t, "padded message body", msg.Body())
	})

	t.Run("body length boundary", func(t *testing.T) {
		_, err := contact.NewMessage("Jordan", "jordan@example.com", "+15125550142", strings.Repeat("x", 10))
		assert.NoError(t, err)

		_, err = contact.NewMessage("Jordan", "jordan@example.com", "+15125550142", strings.Repeat("x", 9))
		assert.ErrorIs(t, err, contact.ErrMessageTooShort)
	})

	t.Run("whitespace does not count toward the minimum", func(t *testing.T) {
		_, err := contact.NewMessage("Jordan", "jordan@example.com", "+15125550142", "   short   ")
		assert.ErrorIs(t, err, contact.ErrMessageTooShort)
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := contact.NewMessage("   ", "jordan@example.com", "+15125550142", "a long enough body")
		assert.ErrorIs(t, err, contact.ErrNameRequired)
	})

	t.Run("invalid contact details", func(t *testing.T) {
		_, err := contact.NewMessage("Jordan", "not-an-email", "+15125550142", "a long enough body")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)

		_, err = contact.NewMessage("Jordan", "jordan@example.com", "???", "a long enough body")
		assert.ErrorIs(t, err, user.ErrInvalidPhone)
	})
}
