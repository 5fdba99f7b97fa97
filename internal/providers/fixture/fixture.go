// Package fixture serves a canned dataset for local development and tests.
// The CSVs are shaped exactly like the real sheet exports and run through
// the same parser and normalizers as production data.
package fixture

import (
	"context"
	_ "embed"

	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/providers/sheets"
)

var (
	//go:embed testdata/games.csv
	gamesCSV string
	//go:embed testdata/players.csv
	playersCSV string
	//go:embed testdata/globals.csv
	globalsCSV string
	//go:embed testdata/events.csv
	eventsCSV string
	//go:embed testdata/kills.csv
	killsCSV string
	//go:embed testdata/teammates.csv
	teammatesCSV string
)

// Provider returns the embedded dataset.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchDataset parses the embedded CSVs into a dataset snapshot.
func (p *Provider) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, err
	}

	globals, err := sheets.MapGlobals(records(globalsCSV))
	if err != nil {
		return domain.Dataset{}, err
	}

	return domain.Dataset{
		Games:          sheets.MapGames(records(gamesCSV)),
		Players:        sheets.MapPlayers(records(playersCSV)),
		Globals:        globals,
		KillEdges:      sheets.MapKillEdges(records(killsCSV)),
		TeammateGroups: sheets.MapTeammateGroups(records(teammatesCSV)),
		Events:         sheets.MapEvents(records(eventsCSV)),
	}, nil
}

func records(csv string) []sheets.Record {
	return sheets.Records(sheets.ParseCSV(csv))
}
