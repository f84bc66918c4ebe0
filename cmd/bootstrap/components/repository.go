package components

import (
	"context"
	"log/slog"

	"carhaul-portal/internal/infra/repository"
	"carhaul-portal/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewSessionRepository,
			fx.As(new(shared.SessionStore)),
		),
		fx.Annotate(
			repository.NewWizardRepository,
			fx.As(new(shared.WizardStore)),
		),
		repository.NewSessionSweeper,
	),
	fx.Invoke(startSweeper),
)

// startSweeper runs the session sweeper for the lifetime of the app. The
// immediate first sweep is what removes rows from older session schemas.
func startSweeper(lc fx.Lifecycle, sweeper *repository.SessionSweeper, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting session sweeper")
			go sweeper.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
