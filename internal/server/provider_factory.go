package server

import (
	"log/slog"
	"strings"

	"amongus-stats-service/internal/config"
	"amongus-stats-service/internal/metrics"
	"amongus-stats-service/internal/providers"
	"amongus-stats-service/internal/providers/fixture"
	"amongus-stats-service/internal/providers/sheets"
)

// providerFactory assembles the dataset provider with the shared retry
// wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DatasetProvider {
	base := selectProvider(cfg, f.metrics)
	return providers.NewRetryingProvider(base, f.logger, f.metrics, providerName(cfg.Provider), 0, 0)
}

func selectProvider(cfg config.Config, recorder *metrics.Recorder) providers.DatasetProvider {
	switch strings.ToLower(cfg.Provider) {
	case "sheets":
		return sheets.NewClient(sheets.Config{
			BaseURL: cfg.Sheets.BaseURL,
			SheetID: cfg.Sheets.SheetID,
			GIDs:    sheetGIDs(cfg.Sheets),
		}, recorder)
	default:
		return fixture.New()
	}
}

// sheetGIDs converts the string-keyed config overrides into table keys,
// dropping empty entries.
func sheetGIDs(cfg config.SheetsConfig) map[sheets.Table]string {
	gids := make(map[sheets.Table]string, len(cfg.GIDs))
	for table, gid := range cfg.GIDs {
		if gid != "" {
			gids[sheets.Table(table)] = gid
		}
	}
	return gids
}

func providerName(raw string) string {
	if raw == "" {
		return "fixture"
	}
	return strings.ToLower(raw)
}
