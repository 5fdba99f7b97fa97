package fixture

import (
	"context"
	"testing"

	"amongus-stats-service/internal/stats"
)

func TestFetchDataset(t *testing.T) {
	dataset, err := New().FetchDataset(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(dataset.Games) == 0 || len(dataset.Players) == 0 {
		t.Fatalf("fixture dataset is missing core tables: %d games, %d players", len(dataset.Games), len(dataset.Players))
	}
	if dataset.Globals.TotalGames == 0 {
		t.Fatalf("globals did not parse: %+v", dataset.Globals)
	}
	if len(dataset.Globals.RoleWins) == 0 || len(dataset.Globals.MapFrequencies) == 0 {
		t.Fatalf("globals columns did not parse: %+v", dataset.Globals)
	}
	if len(dataset.KillEdges) == 0 || len(dataset.TeammateGroups) == 0 || len(dataset.Events) == 0 {
		t.Fatalf("graph tables did not parse")
	}

	// Every game has a roster; the fixture has no blank roster cells.
	for _, g := range dataset.Games {
		if len(g.Players) == 0 {
			t.Fatalf("game %d has no roster", g.GameNumber)
		}
	}
}

func TestFetchDatasetGroupsIntoSessions(t *testing.T) {
	dataset, err := New().FetchDataset(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sessions := stats.GroupSessions(dataset.Games)
	if len(sessions) < 2 {
		t.Fatalf("expected multiple sessions, got %d", len(sessions))
	}

	// The fixture contains games without a valid video link; they collapse
	// into the shared unknown session.
	foundUnknown := false
	for _, s := range sessions {
		if s.VideoID == stats.UnknownSession {
			foundUnknown = true
		}
	}
	if !foundUnknown {
		t.Fatalf("expected an unknown session in the fixture")
	}
}

func TestFetchDatasetCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().FetchDataset(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}
