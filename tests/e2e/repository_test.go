//go:build e2e

package e2e

import (
	"context"
	"testing"
	"time"

	"carhaul-portal/internal/domain/session"
	"carhaul-portal/internal/domain/wizard"
	"carhaul-portal/internal/infra"
	"carhaul-portal/internal/infra/repository"
	"carhaul-portal/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

var repoNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

type RepositoryTestSuite struct {
	suite.Suite
	ctx      context.Context
	pool     *pgxpool.Pool
	sessions *repository.SessionRepository
	wizards  *repository.WizardRepository
}

func (s *RepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pool = setupDatabase(s.T())
	s.sessions = repository.NewSessionRepository(s.pool)
	s.wizards = repository.NewWizardRepository(s.pool)
}

func (s *RepositoryTestSuite) SetupSubTest() {
	s.Require().NoError(resetDB(s.pool))
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) seedSessionRow(id uuid.UUID, snapshot string, schemaVersion int, expiresAt time.Time) {
	_, err := s.pool.Exec(s.ctx, `
		INSERT INTO sessions (id, user_snapshot, upstream_token, schema_version, created_at, expires_at)
		VALUES ($1, $2, 'token', $3, $4, $5)`,
		id, []byte(snapshot), schemaVersion, repoNow, expiresAt)
	s.Require().NoError(err)
}

func (s *RepositoryTestSuite) TestSessionRepository() {
	s.Run("round trip", func() {
		sess, err := builder.NewSessionBuilder().BuildDomain(repoNow)
		s.Require().NoError(err)
		s.Require().NoError(s.sessions.Create(s.ctx, sess))

		found, err := s.sessions.Find(s.ctx, sess.ID())
		s.Require().NoError(err)
		s.Require().NotNil(found)

		s.Equal(sess.ID(), found.ID())
		s.Equal(sess.UpstreamToken(), found.UpstreamToken())
		s.Equal(sess.User().Email, found.User().Email)
		s.Equal(sess.User().Role, found.User().Role)
		s.True(sess.ExpiresAt().Equal(found.ExpiresAt()))
	})

	s.Run("absent session reads as nil without error", func() {
		found, err := s.sessions.Find(s.ctx, uuid.New())
		s.Require().NoError(err)
		s.Nil(found)
	})

	s.Run("undecodable snapshot is purged on read", func() {
		id := uuid.New()
		s.seedSessionRow(id, `{"first_name": 123}`, session.SchemaVersion, repoNow.Add(time.Hour))

		found, err := s.sessions.Find(s.ctx, id)
		s.Require().NoError(err)
		s.Nil(found)

		var count int
		s.Require().NoError(s.pool.QueryRow(s.ctx, `SELECT count(*) FROM sessions WHERE id = $1`, id).Scan(&count))
		s.Zero(count)
	})

	s.Run("save user overwrites the cached profile", func() {
		sess, err := builder.NewSessionBuilder().BuildDomain(repoNow)
		s.Require().NoError(err)
		s.Require().NoError(s.sessions.Create(s.ctx, sess))

		updated := builder.NewSessionBuilder().BuildUser()
		updated.FirstName = "Riley"
		s.Require().NoError(s.sessions.SaveUser(s.ctx, sess.ID(), updated))

		found, err := s.sessions.Find(s.ctx, sess.ID())
		s.Require().NoError(err)
		s.Equal("Riley", found.User().FirstName)

		err = s.sessions.SaveUser(s.ctx, uuid.New(), updated)
		s.True(infra.IsKind(err, infra.KindNotFound))
	})

	s.Run("delete is idempotent", func() {
		sess, err := builder.NewSessionBuilder().BuildDomain(repoNow)
		s.Require().NoError(err)
		s.Require().NoError(s.sessions.Create(s.ctx, sess))

		s.Require().NoError(s.sessions.Delete(s.ctx, sess.ID()))
		s.Require().NoError(s.sessions.Delete(s.ctx, sess.ID()))
	})

	s.Run("sweep removes expired and stale-schema rows", func() {
		live, err := builder.NewSessionBuilder().BuildDomain(repoNow)
		s.Require().NoError(err)
		s.Require().NoError(s.sessions.Create(s.ctx, live))

		snapshot := `{"first_name":"Old","last_name":"Row","email":"old@example.com","phone_number":"15125550100","role":"customer"}`
		s.seedSessionRow(uuid.New(), snapshot, session.SchemaVersion, repoNow.Add(-time.Hour))
		s.seedSessionRow(uuid.New(), snapshot, session.SchemaVersion-1, repoNow.Add(time.Hour))

		removed, err := s.sessions.SweepExpired(s.ctx, repoNow, session.SchemaVersion)
		s.Require().NoError(err)
		s.Equal(int64(2), removed)

		found, err := s.sessions.Find(s.ctx, live.ID())
		s.Require().NoError(err)
		s.NotNil(found)
	})
}

func (s *RepositoryTestSuite) TestWizardRepository() {
	s.Run("round trip with every column populated", func() {
		state := builder.NewWizardBuilder().
			WithKey("visitor-key").
			AtPaymentPending().
			WithResumeTarget("/checkout").
			BuildDomain()
		state.RecordQuoteFailure([]byte(`{"brand":"Toyota"}`))
		s.Require().NoError(s.wizards.Save(s.ctx, state))

		found, err := s.wizards.Find(s.ctx, "visitor-key")
		s.Require().NoError(err)
		s.Require().NotNil(found)

		s.Equal(wizard.StagePaymentPending, found.Stage())
		s.Require().NotNil(found.Quote())
		s.Equal(state.Quote().Reference, found.Quote().Reference)
		s.Equal(state.Quote().PriceCents, found.Quote().PriceCents)
		s.Require().NotNil(found.Draft())
		s.Equal(state.Draft().PickupContactName, found.Draft().PickupContactName)
		s.Equal("RSV-7731", found.ReservationID())
		s.Equal("standard", found.ProtectionPlan())
		s.Equal("cs_test_8842", found.PaymentSessionID())
		s.JSONEq(`{"brand":"Toyota"}`, string(found.LastQuoteAttempt()))
		s.Require().NotNil(found.ResumeTarget())
		s.Equal("/checkout", found.ResumeTarget().RedirectTo)
		s.True(state.UpdatedAt().Equal(found.UpdatedAt()))
	})

	s.Run("absent state reads as nil without error", func() {
		found, err := s.wizards.Find(s.ctx, "missing")
		s.Require().NoError(err)
		s.Nil(found)
	})

	s.Run("unknown stage is purged on read", func() {
		_, err := s.pool.Exec(s.ctx, `
			INSERT INTO wizard_states (key, stage, updated_at)
			VALUES ('stale-key', 'warp_drive', $1)`, repoNow)
		s.Require().NoError(err)

		found, err := s.wizards.Find(s.ctx, "stale-key")
		s.Require().NoError(err)
		s.Nil(found)

		var count int
		s.Require().NoError(s.pool.QueryRow(s.ctx, `SELECT count(*) FROM wizard_states WHERE key = 'stale-key'`).Scan(&count))
		s.Zero(count)
	})

	s.Run("save is an upsert", func() {
		first := builder.NewWizardBuilder().WithKey("visitor-key").AtQuoteReceived().BuildDomain()
		s.Require().NoError(s.wizards.Save(s.ctx, first))

		second := builder.NewWizardBuilder().WithKey("visitor-key").AtDraftStarted().BuildDomain()
		s.Require().NoError(s.wizards.Save(s.ctx, second))

		found, err := s.wizards.Find(s.ctx, "visitor-key")
		s.Require().NoError(err)
		s.Equal(wizard.StageDraftStarted, found.Stage())
	})

	s.Run("rekey moves the row to the new key", func() {
		state := builder.NewWizardBuilder().WithKey("visitor-key").AtQuoteReceived().BuildDomain()
		s.Require().NoError(s.wizards.Save(s.ctx, state))

		s.Require().NoError(s.wizards.Rekey(s.ctx, "visitor-key", "session-key"))

		orphan, err := s.wizards.Find(s.ctx, "visitor-key")
		s.Require().NoError(err)
		s.Nil(orphan)

		moved, err := s.wizards.Find(s.ctx, "session-key")
		s.Require().NoError(err)
		s.Require().NotNil(moved)
		s.Equal(wizard.StageQuoteReceived, moved.Stage())
	})

	s.Run("rekey replaces an existing row under the target key", func() {
		old := builder.NewWizardBuilder().WithKey("session-key").AtQuoteReceived().BuildDomain()
		s.Require().NoError(s.wizards.Save(s.ctx, old))
		fresh := builder.NewWizardBuilder().WithKey("other-visitor").AtPaymentPending().BuildDomain()
		s.Require().NoError(s.wizards.Save(s.ctx, fresh))

		s.Require().NoError(s.wizards.Rekey(s.ctx, "other-visitor", "session-key"))

		found, err := s.wizards.Find(s.ctx, "session-key")
		s.Require().NoError(err)
		s.Equal(wizard.StagePaymentPending, found.Stage())
	})

	s.Run("rekey of a missing source reports not found", func() {
		err := s.wizards.Rekey(s.ctx, "never-existed", "session-key")
		s.True(infra.IsKind(err, infra.KindNotFound))
	})

	s.Run("delete is idempotent", func() {
		state := builder.NewWizardBuilder().WithKey("visitor-key").AtQuoteReceived().BuildDomain()
		s.Require().NoError(s.wizards.Save(s.ctx, state))

		s.Require().NoError(s.wizards.Delete(s.ctx, "visitor-key"))
		s.Require().NoError(s.wizards.Delete(s.ctx, "visitor-key"))
	})
}
