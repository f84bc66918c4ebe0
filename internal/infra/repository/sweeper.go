package repository

import (
	"context"
	"log/slog"
	"time"

	"carhaul-portal/internal/domain/session"
	"carhaul-portal/internal/pkg/clock"
	"carhaul-portal/internal/pkg/config"
	"carhaul-portal/internal/usecase/shared"
)

// SessionSweeper removes expired and stale-schema sessions. It runs once at
// startup, which is the versioned-schema escape hatch: rows written by an
// older layout are dropped wholesale instead of being special-cased in every
// read path.
type SessionSweeper struct {
	sessions shared.SessionStore
	clk      clock.Clock
	cfg      config.SessionConfig
	logger   *slog.Logger
}

func NewSessionSweeper(sessions shared.SessionStore, clk clock.Clock, cfg config.SessionConfig, logger *slog.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		clk:      clk,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run sweeps immediately, then on every tick until the context ends.
func (s *SessionSweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	removed, err := s.sessions.SweepExpired(ctx, s.clk.Now(), session.SchemaVersion)
	if err != nil {
		s.logger.Error("session sweep failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		s.logger.Info("swept sessions", slog.Int64("removed", removed))
	}
}
