package session

import (
	"errors"
	"time"

	"carhaul-portal/internal/domain/user"
	"carhaul-portal/internal/pkg/patch"

	"github.com/google/uuid"
)

// SchemaVersion tags every persisted session row. Rows written by older
// layouts of the store are swept at startup instead of being patched around
// in the logout path.
const SchemaVersion = 2

var (
	ErrNotAuthenticated = errors.New("session is not authenticated")
	ErrMissingToken     = errors.New("upstream token is required")
	ErrMissingUser      = errors.New("session user is required")
)

// User is the profile snapshot cached from the upstream core API at login.
// Persisted as JSON on the session row.
type User struct {
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Role        user.Role `json:"role"`
}

type UserPatch struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

// Session pairs the cached user with the upstream bearer token. The two are
// written and cleared together; a session holding only one of them is invalid.
type Session struct {
	id            uuid.UUID
	user          *User
	upstreamToken string
	createdAt     time.Time
	expiresAt     time.Time
}

func NewSession(u *User, upstreamToken string, now time.Time, ttl time.Duration) (*Session, error) {
	if u == nil {
		return nil, ErrMissingUser
	}
	if upstreamToken == "" {
		return nil, ErrMissingToken
	}
	return &Session{
		id:            uuid.New(),
		user:          u,
		upstreamToken: upstreamToken,
		createdAt:     now,
		expiresAt:     now.Add(ttl),
	}, nil
}

func ReconstructSession(id uuid.UUID, u *User, upstreamToken string, createdAt, expiresAt time.Time) *Session {
	return &Session{
		id:            id,
		user:          u,
		upstreamToken: upstreamToken,
		createdAt:     createdAt,
		expiresAt:     expiresAt,
	}
}

// Authenticated holds iff both halves of the pair are present.
func (s *Session) Authenticated() bool {
	return s != nil && s.user != nil && s.upstreamToken != ""
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.expiresAt)
}

// ApplyUserPatch merges a partial profile update into the cached user.
// No-ops when the session carries no user.
func (s *Session) ApplyUserPatch(p UserPatch) bool {
	if s.user == nil {
		return false
	}
	s.user.FirstName = patch.Coalesce(p.FirstName, s.user.FirstName)
	s.user.LastName = patch.Coalesce(p.LastName, s.user.LastName)
	s.user.PhoneNumber = patch.Coalesce(p.PhoneNumber, s.user.PhoneNumber)
	return true
}

func (s *Session) ID() uuid.UUID         { return s.id }
func (s *Session) User() *User           { return s.user }
func (s *Session) UpstreamToken() string { return s.upstreamToken }
func (s *Session) CreatedAt() time.Time  { return s.createdAt }
func (s *Session) ExpiresAt() time.Time  { return s.expiresAt }

func (s *Session) Role() user.Role {
	if s.user == nil {
		return ""
	}
	return s.user.Role
}
