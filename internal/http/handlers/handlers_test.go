package handlers

import (
	"net/http"
	"testing"
	"time"

	"amongus-stats-service/internal/app/boards"
	"amongus-stats-service/internal/app/games"
	"amongus-stats-service/internal/app/maps"
	"amongus-stats-service/internal/app/overview"
	"amongus-stats-service/internal/app/players"
	"amongus-stats-service/internal/app/tiers"
	"amongus-stats-service/internal/community"
	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/poller"
	"amongus-stats-service/internal/stats"
	"amongus-stats-service/internal/store"
	"amongus-stats-service/internal/testutil"
)

const testAdminToken = "sekrit"

func newTestHandler(t *testing.T, dataset *domain.Dataset) *Handler {
	t.Helper()
	memStore := store.NewMemoryStore()
	if dataset != nil {
		memStore.SetDataset(*dataset)
	}
	commStore := community.NewMemoryStore()
	t.Cleanup(func() { _ = commStore.Close() })

	statusFn := func() poller.Status {
		return poller.Status{LastSuccess: time.Now()}
	}
	return NewHandler(Services{
		Games:    games.NewService(memStore),
		Maps:     maps.NewService(memStore),
		Players:  players.NewService(memStore),
		Overview: overview.NewService(memStore, nil),
		Tiers:    tiers.NewService(commStore),
		Boards:   boards.NewService(commStore),
	}, testAdminToken, nil, statusFn)
}

func seededHandler(t *testing.T) *Handler {
	dataset := testutil.SampleDataset()
	return newTestHandler(t, &dataset)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestHealthMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestReady(t *testing.T) {
	h := seededHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestReadyNotReady(t *testing.T) {
	h := seededHandler(t)
	h.statusFn = func() poller.Status {
		return poller.Status{LastError: "fetch failed"}
	}
	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "fetch failed" {
		t.Fatalf("expected last error surfaced, got %v", body)
	}
}

func TestSessions(t *testing.T) {
	h := seededHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.Sessions), http.MethodGet, "/api/games", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body struct {
		Sessions []domain.Session `json:"sessions"`
		stats.Page
	}
	testutil.DecodeJSON(t, rr, &body)
	if len(body.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(body.Sessions))
	}
	if body.Total != 1 || body.HasMore {
		t.Fatalf("unexpected page info: %+v", body.Page)
	}
	if body.Sessions[0].VideoID != "dQw4w9WgXcQ" {
		t.Fatalf("unexpected session: %+v", body.Sessions[0])
	}
}

func TestSessionsPagination(t *testing.T) {
	dataset := domain.Dataset{}
	for i := 1; i <= 25; i++ {
		g := testutil.SampleGame(i, "")
		dataset.Games = append(dataset.Games, g)
	}
	// Unlinked games collapse into one session, so vary the video instead.
	for i := range dataset.Games {
		dataset.Games[i].VideoURL = "https://youtu.be/aaaaaaaaa" + string(rune('a'+i%26)) + string(rune('a'+i/26))
	}
	h := newTestHandler(t, &dataset)

	rr := testutil.Serve(http.HandlerFunc(h.Sessions), http.MethodGet, "/api/games?page=2&limit=10", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body struct {
		Sessions []domain.Session `json:"sessions"`
		stats.Page
	}
	testutil.DecodeJSON(t, rr, &body)
	if len(body.Sessions) != 10 || body.Page.Page != 2 || !body.HasMore || body.Total != 25 {
		t.Fatalf("unexpected page: %d sessions, info %+v", len(body.Sessions), body.Page)
	}
}

func TestSessionsOverflowingPage(t *testing.T) {
	h := seededHandler(t)

	// A page far past the data is empty, never an error.
	rr := testutil.Serve(http.HandlerFunc(h.Sessions), http.MethodGet,
		"/api/games?page=4611686018427387904&limit=4", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body struct {
		Sessions []domain.Session `json:"sessions"`
		stats.Page
	}
	testutil.DecodeJSON(t, rr, &body)
	if len(body.Sessions) != 0 || body.HasMore {
		t.Fatalf("expected empty page, got %d sessions, info %+v", len(body.Sessions), body.Page)
	}
}

func TestMaps(t *testing.T) {
	h := seededHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.Maps), http.MethodGet, "/api/maps", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body struct {
		Maps []domain.MapSummary `json:"maps"`
	}
	testutil.DecodeJSON(t, rr, &body)
	if len(body.Maps) != 1 || body.Maps[0].Name != "The Skeld" {
		t.Fatalf("unexpected maps: %+v", body.Maps)
	}
}

func TestMapSessions(t *testing.T) {
	h := seededHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.MapRoutes), http.MethodGet, "/api/maps/The_Skeld/games", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body struct {
		Sessions []domain.Session `json:"sessions"`
		stats.Page
	}
	testutil.DecodeJSON(t, rr, &body)
	if len(body.Sessions) != 1 {
		t.Fatalf("expected 1 session on The Skeld, got %d", len(body.Sessions))
	}
}

func TestMapSessionsUnknownPath(t *testing.T) {
	h := seededHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.MapRoutes), http.MethodGet, "/api/maps/The_Skeld/other", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestPlayers(t *testing.T) {
	h := seededHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.Players), http.MethodGet, "/api/players", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body struct {
		Players []domain.PlayerStats `json:"players"`
	}
	testutil.DecodeJSON(t, rr, &body)
	if len(body.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(body.Players))
	}
}

func TestPlayerProfile(t *testing.T) {
	h := seededHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.PlayerRoutes), http.MethodGet, "/api/players/harry", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body domain.PlayerProfile
	testutil.DecodeJSON(t, rr, &body)
	if body.Name != "Harry" {
		t.Fatalf("unexpected profile: %+v", body)
	}
	if body.TopTargets == nil || body.BestTeammates == nil {
		t.Fatalf("expected join lists present: %+v", body)
	}
}

func TestPlayerProfileNotFound(t *testing.T) {
	h := seededHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.PlayerRoutes), http.MethodGet, "/api/players/Simon", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestPlayerGames(t *testing.T) {
	h := seededHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.PlayerRoutes), http.MethodGet, "/api/players/Harry/games", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body struct {
		Games []domain.PlayerGame `json:"games"`
		stats.Page
	}
	testutil.DecodeJSON(t, rr, &body)
	if len(body.Games) != 2 {
		t.Fatalf("expected 2 games for Harry, got %d", len(body.Games))
	}
	if body.Games[0].GameNumber != 2 {
		t.Fatalf("expected newest game first, got %+v", body.Games[0])
	}
}

func TestPlayerGamesUnknownPlayerIsEmpty(t *testing.T) {
	h := seededHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.PlayerRoutes), http.MethodGet, "/api/players/Simon/games", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body struct {
		Games []domain.PlayerGame `json:"games"`
		stats.Page
	}
	testutil.DecodeJSON(t, rr, &body)
	if len(body.Games) != 0 || body.Total != 0 {
		t.Fatalf("expected empty page, got %+v", body)
	}
}

func TestOverview(t *testing.T) {
	h := seededHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.Overview), http.MethodGet, "/api/stats/overview", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body domain.Overview
	testutil.DecodeJSON(t, rr, &body)
	if body.TotalGames != 2 || body.TotalPlayers != 2 {
		t.Fatalf("unexpected overview: %+v", body)
	}
	if body.TopPlayer == nil {
		t.Fatalf("expected a top player")
	}
}

func TestOverviewBeforeFirstLoad(t *testing.T) {
	h := newTestHandler(t, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Overview), http.MethodGet, "/api/stats/overview", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestLatestVideoWithoutFeed(t *testing.T) {
	h := seededHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.LatestVideo), http.MethodGet, "/api/stats/latest-video", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}
