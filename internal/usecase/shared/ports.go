// Package shared holds the persistence ports used by both commands and
// queries. Implementations live in internal/infra.
package shared

import (
	"context"
	"time"

	"carhaul-portal/internal/domain/session"
	"carhaul-portal/internal/domain/wizard"

	"github.com/google/uuid"
)

// SessionStore persists server-side sessions. Find must treat a row whose
// cached user cannot be decoded as absent and purge it, so a half-written
// session can never be resurrected.
type SessionStore interface {
	Create(ctx context.Context, s *session.Session) error
	Find(ctx context.Context, id uuid.UUID) (*session.Session, error)
	SaveUser(ctx context.Context, id uuid.UUID, u *session.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	// SweepExpired removes rows past their expiry or written under an older
	// schema version. Returns the number of rows removed.
	SweepExpired(ctx context.Context, now time.Time, minSchemaVersion int) (int64, error)
}

// WizardStore persists reservation-flow state keyed by visitor or session ID.
// Find returns (nil, nil) when no state exists for the key.
type WizardStore interface {
	Find(ctx context.Context, key string) (*wizard.State, error)
	Save(ctx context.Context, s *wizard.State) error
	// Rekey moves state from a visitor key to a session key at login,
	// replacing any state already stored under the new key.
	Rekey(ctx context.Context, oldKey, newKey string) error
	Delete(ctx context.Context, key string) error
}
