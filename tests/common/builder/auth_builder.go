//go:build unit || e2e

package builder

import (
	"time"

	"carhaul-portal/internal/domain/session"
	"carhaul-portal/internal/domain/user"
	"carhaul-portal/internal/handler/dto/request"
	"carhaul-portal/internal/usecase/readmodel"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() request.LoginRequest {
	return request.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

type SessionBuilder struct {
	FirstName     string
	LastName      string
	Email         string
	PhoneNumber   string
	Role          user.Role
	UpstreamToken string
	TTL           time.Duration
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		FirstName:     "Jordan",
		LastName:      "Blake",
		Email:         "test@example.com",
		PhoneNumber:   "+15125550142",
		Role:          user.RoleCustomer,
		UpstreamToken: "upstream-bearer-token",
		TTL:           time.Hour,
	}
}

func (b *SessionBuilder) WithRole(role user.Role) *SessionBuilder {
	b.Role = role
	return b
}

func (b *SessionBuilder) WithUpstreamToken(token string) *SessionBuilder {
	b.UpstreamToken = token
	return b
}

func (b *SessionBuilder) BuildUser() *session.User {
	return &session.User{
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Email:       b.Email,
		PhoneNumber: b.PhoneNumber,
		Role:        b.Role,
	}
}

func (b *SessionBuilder) BuildDomain(now time.Time) (*session.Session, error) {
	return session.NewSession(b.BuildUser(), b.UpstreamToken, now, b.TTL)
}

func (b *SessionBuilder) BuildReadModel() *readmodel.SessionUserRM {
	return &readmodel.SessionUserRM{
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Email:       b.Email,
		PhoneNumber: b.PhoneNumber,
		Role:        string(b.Role),
	}
}
