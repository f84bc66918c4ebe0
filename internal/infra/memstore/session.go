// Package memstore holds in-memory store implementations used by unit tests
// and local development without a database. Rows are kept serialized the same
// way the Postgres stores keep them, so decode failures behave identically.
package memstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"carhaul-portal/internal/domain/session"
	"carhaul-portal/internal/infra"

	"github.com/google/uuid"
)

type sessionRow struct {
	snapshot      []byte
	upstreamToken string
	schemaVersion int
	createdAt     time.Time
	expiresAt     time.Time
}

type SessionStore struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]sessionRow
}

func NewSessionStore() *SessionStore {
	return &SessionStore{rows: make(map[uuid.UUID]sessionRow)}
}

func (s *SessionStore) Create(_ context.Context, sess *session.Session) error {
	snapshot, err := json.Marshal(sess.User())
	if err != nil {
		return infra.WrapRepoErr("encode session user", err, infra.KindCorruptRow)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[sess.ID()] = sessionRow{
		snapshot:      snapshot,
		upstreamToken: sess.UpstreamToken(),
		schemaVersion: session.SchemaVersion,
		createdAt:     sess.CreatedAt(),
		expiresAt:     sess.ExpiresAt(),
	}
	return nil
}

func (s *SessionStore) Find(_ context.Context, id uuid.UUID) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	var u session.User
	if err := json.Unmarshal(row.snapshot, &u); err != nil {
		delete(s.rows, id)
		return nil, nil
	}
	return session.ReconstructSession(id, &u, row.upstreamToken, row.createdAt, row.expiresAt), nil
}

func (s *SessionStore) SaveUser(_ context.Context, id uuid.UUID, u *session.User) error {
	snapshot, err := json.Marshal(u)
	if err != nil {
		return infra.WrapRepoErr("encode session user", err, infra.KindCorruptRow)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
	}
	row.snapshot = snapshot
	s.rows[id] = row
	return nil
}

func (s *SessionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, id)
	return nil
}

func (s *SessionStore) SweepExpired(_ context.Context, now time.Time, minSchemaVersion int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for id, row := range s.rows {
		if now.After(row.expiresAt) || row.schemaVersion < minSchemaVersion {
			delete(s.rows, id)
			removed++
		}
	}
	return removed, nil
}

// SeedRaw plants a row as-is. Tests use it to simulate rows written by older
// code: corrupt snapshots, stale schema versions.
func (s *SessionStore) SeedRaw(id uuid.UUID, snapshot []byte, token string, schemaVersion int, createdAt, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[id] = sessionRow{
		snapshot:      snapshot,
		upstreamToken: token,
		schemaVersion: schemaVersion,
		createdAt:     createdAt,
		expiresAt:     expiresAt,
	}
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}
