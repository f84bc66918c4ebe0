package repository

import (
	"context"
	"encoding/json"

	"carhaul-portal/internal/domain/wizard"
	"carhaul-portal/internal/infra"
	"carhaul-portal/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WizardRepository struct {
	pool *pgxpool.Pool
}

func NewWizardRepository(pool *pgxpool.Pool) *WizardRepository {
	return &WizardRepository{pool: pool}
}

func (r *WizardRepository) Find(ctx context.Context, key string) (*wizard.State, error) {
	var (
		stage            string
		quoteRaw         []byte
		draftRaw         []byte
		reservationID    string
		protectionPlan   string
		paymentSessionID string
		lastQuoteAttempt []byte
		resumeRaw        []byte
		updatedAt        pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, `
		SELECT stage, quote, draft, reservation_id, protection_plan,
		       payment_session_id, last_quote_attempt, resume_target, updated_at
		FROM wizard_states WHERE key = $1`,
		key,
	).Scan(&stage, &quoteRaw, &draftRaw, &reservationID, &protectionPlan,
		&paymentSessionID, &lastQuoteAttempt, &resumeRaw, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("find flow state", err)
	}

	if !wizard.Stage(stage).IsValid() {
		if delErr := r.Delete(ctx, key); delErr != nil {
			return nil, delErr
		}
		return nil, nil
	}

	var quote *wizard.Quote
	if len(quoteRaw) > 0 {
		quote = &wizard.Quote{}
		if err := json.Unmarshal(quoteRaw, quote); err != nil {
			return nil, infra.WrapRepoErr("decode flow quote", err, infra.KindCorruptRow)
		}
	}
	var draft *wizard.Draft
	if len(draftRaw) > 0 {
		draft = &wizard.Draft{}
		if err := json.Unmarshal(draftRaw, draft); err != nil {
			return nil, infra.WrapRepoErr("decode flow draft", err, infra.KindCorruptRow)
		}
	}
	var resume *wizard.ResumeTarget
	if len(resumeRaw) > 0 {
		resume = &wizard.ResumeTarget{}
		if err := json.Unmarshal(resumeRaw, resume); err != nil {
			return nil, infra.WrapRepoErr("decode resume target", err, infra.KindCorruptRow)
		}
	}

	return wizard.ReconstructState(
		key, wizard.Stage(stage), quote, draft,
		reservationID, protectionPlan, paymentSessionID,
		lastQuoteAttempt, resume,
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *WizardRepository) Save(ctx context.Context, s *wizard.State) error {
	quoteRaw, err := marshalNullable(s.Quote())
	if err != nil {
		return infra.WrapRepoErr("encode flow quote", err, infra.KindCorruptRow)
	}
	draftRaw, err := marshalNullable(s.Draft())
	if err != nil {
		return infra.WrapRepoErr("encode flow draft", err, infra.KindCorruptRow)
	}
	resumeRaw, err := marshalNullable(s.ResumeTarget())
	if err != nil {
		return infra.WrapRepoErr("encode resume target", err, infra.KindCorruptRow)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO wizard_states (key, stage, quote, draft, reservation_id,
			protection_plan, payment_session_id, last_quote_attempt, resume_target, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (key) DO UPDATE SET
			stage = EXCLUDED.stage,
			quote = EXCLUDED.quote,
			draft = EXCLUDED.draft,
			reservation_id = EXCLUDED.reservation_id,
			protection_plan = EXCLUDED.protection_plan,
			payment_session_id = EXCLUDED.payment_session_id,
			last_quote_attempt = EXCLUDED.last_quote_attempt,
			resume_target = EXCLUDED.resume_target,
			updated_at = EXCLUDED.updated_at`,
		s.Key(), s.Stage().String(), quoteRaw, draftRaw, s.ReservationID(),
		s.ProtectionPlan(), s.PaymentSessionID(), s.LastQuoteAttempt(), resumeRaw,
		pgconv.TimeToPgtype(s.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("save flow state", err)
	}
	return nil
}

// Rekey moves a row to a new key, replacing whatever was stored there. Both
// statements run in one transaction so a crash cannot leave two copies.
func (r *WizardRepository) Rekey(ctx context.Context, oldKey, newKey string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("begin rekey", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM wizard_states WHERE key = $1`, newKey); err != nil {
		return infra.WrapRepoErr("clear rekey target", err)
	}
	tag, err := tx.Exec(ctx, `UPDATE wizard_states SET key = $2 WHERE key = $1`, oldKey, newKey)
	if err != nil {
		return infra.WrapRepoErr("rekey flow state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("flow state not found", nil, infra.KindNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("commit rekey", err)
	}
	return nil
}

func (r *WizardRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM wizard_states WHERE key = $1`, key); err != nil {
		return infra.WrapRepoErr("delete flow state", err)
	}
	return nil
}

func marshalNullable[T any](v *T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}
