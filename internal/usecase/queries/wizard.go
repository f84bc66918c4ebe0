package queries

import (
	"context"

	"carhaul-portal/internal/domain/wizard"
	"carhaul-portal/internal/pkg/errs"
	"carhaul-portal/internal/usecase/converter"
	"carhaul-portal/internal/usecase/readmodel"
	"carhaul-portal/internal/usecase/shared"
)

type WizardQueries struct {
	wizards shared.WizardStore
}

func NewWizardQueries(wizards shared.WizardStore) *WizardQueries {
	return &WizardQueries{wizards: wizards}
}

// State returns the caller's flow position. A caller with no stored state gets
// a fresh no_quote view rather than an error.
func (w *WizardQueries) State(ctx context.Context, key string) (*readmodel.WizardStateRM, error) {
	state, err := w.wizards.Find(ctx, key)
	if err != nil {
		return nil, errs.Wrap(err, "load flow state")
	}
	if state == nil {
		state = wizard.NewState(key)
	}
	return converter.WizardStateToRM(state)
}
