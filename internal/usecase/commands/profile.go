package commands

import (
	"context"

	"carhaul-portal/internal/domain/session"
	"carhaul-portal/internal/domain/user"
	"carhaul-portal/internal/pkg/errs"
	"carhaul-portal/internal/upstream"
	"carhaul-portal/internal/usecase/readmodel"
	"carhaul-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSessionGone = errs.New("session no longer exists")

type ProfilePatchInput struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

type ProfileCommands struct {
	gateway  ProfileGateway
	sessions shared.SessionStore
}

func NewProfileCommands(gateway ProfileGateway, sessions shared.SessionStore) *ProfileCommands {
	return &ProfileCommands{gateway: gateway, sessions: sessions}
}

// Update patches the profile upstream first, then mirrors the accepted fields
// into the cached session snapshot. The cache is only touched after upstream
// acknowledges, so it never drifts ahead of the source of truth.
func (p *ProfileCommands) Update(ctx context.Context, sessionID uuid.UUID, upstreamToken string, input ProfilePatchInput) (*readmodel.SessionUserRM, error) {
	if input.PhoneNumber != nil {
		phone, err := user.NewPhone(*input.PhoneNumber)
		if err != nil {
			return nil, err
		}
		normalized := phone.Value()
		input.PhoneNumber = &normalized
	}

	err := p.gateway.Update(ctx, upstreamToken, upstream.ProfilePatchPayload{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		return nil, errs.Wrap(err, "update profile upstream")
	}

	sess, err := p.sessions.Find(ctx, sessionID)
	if err != nil {
		return nil, errs.Wrap(err, "load session")
	}
	if sess == nil {
		return nil, ErrSessionGone
	}

	sess.ApplyUserPatch(session.UserPatch{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		PhoneNumber: input.PhoneNumber,
	})
	if err := p.sessions.SaveUser(ctx, sessionID, sess.User()); err != nil {
		return nil, errs.Wrap(err, "persist session user")
	}

	u := sess.User()
	return &readmodel.SessionUserRM{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role.String(),
	}, nil
}
