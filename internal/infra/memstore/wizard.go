package memstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"carhaul-portal/internal/domain/wizard"
	"carhaul-portal/internal/infra"
)

type wizardRow struct {
	Stage            string               `json:"stage"`
	Quote            *wizard.Quote        `json:"quote,omitempty"`
	Draft            *wizard.Draft        `json:"draft,omitempty"`
	ReservationID    string               `json:"reservation_id,omitempty"`
	ProtectionPlan   string               `json:"protection_plan,omitempty"`
	PaymentSessionID string               `json:"payment_session_id,omitempty"`
	LastQuoteAttempt json.RawMessage      `json:"last_quote_attempt,omitempty"`
	ResumeTarget     *wizard.ResumeTarget `json:"resume_target,omitempty"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

type WizardStore struct {
	mu   sync.RWMutex
	rows map[string][]byte
}

func NewWizardStore() *WizardStore {
	return &WizardStore{rows: make(map[string][]byte)}
}

func (s *WizardStore) Find(_ context.Context, key string) (*wizard.State, error) {
	s.mu.RLock()
	raw, ok := s.rows[key]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var row wizardRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, infra.WrapRepoErr("decode flow state", err, infra.KindCorruptRow)
	}
	return wizard.ReconstructState(
		key, wizard.Stage(row.Stage), row.Quote, row.Draft,
		row.ReservationID, row.ProtectionPlan, row.PaymentSessionID,
		row.LastQuoteAttempt, row.ResumeTarget, row.UpdatedAt,
	), nil
}

func (s *WizardStore) Save(_ context.Context, state *wizard.State) error {
	raw, err := json.Marshal(wizardRow{
		Stage:            state.Stage().String(),
		Quote:            state.Quote(),
		Draft:            state.Draft(),
		ReservationID:    state.ReservationID(),
		ProtectionPlan:   state.ProtectionPlan(),
		PaymentSessionID: state.PaymentSessionID(),
		LastQuoteAttempt: state.LastQuoteAttempt(),
		ResumeTarget:     state.ResumeTarget(),
		UpdatedAt:        state.UpdatedAt(),
	})
	if err != nil {
		return infra.WrapRepoErr("encode flow state", err, infra.KindCorruptRow)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[state.Key()] = raw
	return nil
}

func (s *WizardStore) Rekey(_ context.Context, oldKey, newKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.rows[oldKey]
	if !ok {
		return infra.WrapRepoErr("flow state not found", nil, infra.KindNotFound)
	}
	delete(s.rows, oldKey)
	s.rows[newKey] = raw
	return nil
}

func (s *WizardStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, key)
	return nil
}
