package server

import (
	"log/slog"
	"strings"

	"amongus-stats-service/internal/community"
	"amongus-stats-service/internal/config"
	"amongus-stats-service/internal/logging"
)

// buildCommunityStore opens the configured community backend. A SQLite open
// failure falls back to memory so the stats API still comes up; submissions
// then do not survive a restart.
func buildCommunityStore(cfg config.CommunityConfig, logger *slog.Logger) community.Store {
	backend := strings.TrimSpace(cfg.Backend)
	if backend == "" || strings.EqualFold(backend, "memory") {
		return community.NewMemoryStore()
	}

	store, err := community.OpenSQLite(backend)
	if err != nil {
		logging.Warn(logger, "sqlite open failed, falling back to memory store",
			slog.String("path", backend),
			slog.Any("err", err),
		)
		return community.NewMemoryStore()
	}
	logging.Info(logger, "community store opened", slog.String("path", backend))
	return store
}
