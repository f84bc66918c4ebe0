//go:build unit

package session_test

import (
	"testing"
	"time"

	"carhaul-portal/internal/domain/session"
	"carhaul-portal/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func TestNewSession(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		sess, err := builder.NewSessionBuilder().BuildDomain(sessionNow)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, sess.ID())
		assert.True(t, sess.Authenticated())
		assert.Equal(t, sessionNow, sess.CreatedAt())
		assert.Equal(t, sessionNow.Add(time.Hour), sess.ExpiresAt())
	})

	t.Run("requires a user snapshot", func(t *testing.T) {
		_, err := session.NewSession(nil, "token", sessionNow, time.Hour)
		assert.ErrorIs(t, err, session.ErrMissingUser)
	})

	t.Run("requires an upstream token", func(t *testing.T) {
		_, err := session.NewSession(builder.NewSessionBuilder().BuildUser(), "", sessionNow, time.Hour)
		assert.ErrorIs(t, err, session.ErrMissingToken)
	})
}

func TestSessionExpiry(t *testing.T) {
	sess, err := builder.NewSessionBuilder().BuildDomain(sessionNow)
	require.NoError(t, err)

	assert.False(t, sess.Expired(sessionNow.Add(time.Hour)))
	assert.True(t, sess.Expired(sessionNow.Add(time.Hour+time.Second)))
}

func TestAuthenticated(t *testing.T) {
	t.Run("nil session is not authenticated", func(t *testing.T) {
		var sess *session.Session
		assert.False(t, sess.Authenticated())
	})

	t.Run("reconstructed without user is not authenticated", func(t *testing.T) {
		sess := session.ReconstructSession(uuid.New(), nil, "token", sessionNow, sessionNow.Add(time.Hour))
		assert.False(t, sess.Authenticated())
	})

	t.Run("reconstructed without token is not authenticated", func(t *testing.T) {
		sess := session.ReconstructSession(uuid.New(), builder.NewSessionBuilder().BuildUser(), "", sessionNow, sessionNow.Add(time.Hour))
		assert.False(t, sess.Authenticated())
	})
}

func TestApplyUserPatch(t *testing.T) {
	t.Run("merges only the provided fields", func(t *testing.T) {
		sess, err := builder.NewSessionBuilder().BuildDomain(sessionNow)
		require.NoError(t, err)

		first := "Riley"
		phone := "15125550199"
		applied := sess.ApplyUserPatch(session.UserPatch{FirstName: &first, PhoneNumber: &phone})

		require.True(t, applied)
		assert.Equal(t, "Riley", sess.User().FirstName)
		assert.Equal(t, "Blake", sess.User().LastName)
		assert.Equal(t, "15125550199", sess.User().PhoneNumber)
	})

	t.Run("no-op without a user snapshot", func(t *testing.T) {
		sess := session.ReconstructSession(uuid.New(), nil, "token", sessionNow, sessionNow.Add(time.Hour))
		first := "Riley"
		assert.False(t, sess.ApplyUserPatch(session.UserPatch{FirstName: &first}))
	})
}
