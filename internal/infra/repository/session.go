package repository

import (
	"context"
	"encoding/json"
	"time"

	"carhaul-portal/internal/domain/session"
	"carhaul-portal/internal/infra"
	"carhaul-portal/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) Create(ctx context.Context, s *session.Session) error {
	snapshot, err := json.Marshal(s.User())
	if err != nil {
		return infra.WrapRepoErr("encode session user", err, infra.KindCorruptRow)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO sessions (id, user_snapshot, upstream_token, schema_version, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID(), snapshot, s.UpstreamToken(), session.SchemaVersion,
		pgconv.TimeToPgtype(s.CreatedAt()), pgconv.TimeToPgtype(s.ExpiresAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("insert session", err)
	}
	return nil
}

// Find returns (nil, nil) when no session exists. A row whose cached user no
// longer decodes is deleted and reported as absent; the caller just sees a
// logged-out state instead of a wedged one.
func (r *SessionRepository) Find(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	var (
		snapshot  []byte
		token     string
		createdAt pgtype.Timestamptz
		expiresAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, `
		SELECT user_snapshot, upstream_token, created_at, expires_at
		FROM sessions WHERE id = $1`,
		id,
	).Scan(&snapshot, &token, &createdAt, &expiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("find session", err)
	}

	var u session.User
	if err := json.Unmarshal(snapshot, &u); err != nil {
		if delErr := r.Delete(ctx, id); delErr != nil {
			return nil, delErr
		}
		return nil, nil
	}

	return session.ReconstructSession(
		id, &u, token,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(expiresAt),
	), nil
}

func (r *SessionRepository) SaveUser(ctx context.Context, id uuid.UUID, u *session.User) error {
	snapshot, err := json.Marshal(u)
	if err != nil {
		return infra.WrapRepoErr("encode session user", err, infra.KindCorruptRow)
	}
	tag, err := r.pool.Exec(ctx, `UPDATE sessions SET user_snapshot = $2 WHERE id = $1`, id, snapshot)
	if err != nil {
		return infra.WrapRepoErr("update session user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		return infra.WrapRepoErr("delete session", err)
	}
	return nil
}

func (r *SessionRepository) SweepExpired(ctx context.Context, now time.Time, minSchemaVersion int) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM sessions WHERE expires_at < $1 OR schema_version < $2`,
		pgconv.TimeToPgtype(now), minSchemaVersion,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("sweep sessions", err)
	}
	return tag.RowsAffected(), nil
}
