package server

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"amongus-stats-service/internal/community"
	"amongus-stats-service/internal/config"
	"amongus-stats-service/internal/metrics"
	"amongus-stats-service/internal/poller"
	"amongus-stats-service/internal/providers/fixture"
	"amongus-stats-service/internal/providers/sheets"
	"amongus-stats-service/internal/testutil"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:         "0",
		PollInterval: time.Hour,
		Provider:     "fixture",
		SnapshotDir:  t.TempDir(),
		Community:    config.CommunityConfig{Backend: "memory"},
	}
}

func TestHandlerServesHealth(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := newServerWithMetrics(testConfig(t), logger, nil, metrics.NewRecorder())

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestReadyBeforeFirstPoll(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := newServerWithMetrics(testConfig(t), logger, nil, metrics.NewRecorder())

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestWarmStartFromSnapshot(t *testing.T) {
	cfg := testConfig(t)
	logger, _ := testutil.NewBufferLogger()

	// Write a snapshot first, then boot a fresh server over the same dir.
	first := newServerWithMetrics(cfg, logger, testutil.GoodProvider{Data: testutil.SampleDataset()}, metrics.NewRecorder())
	ctx, cancel := context.WithCancel(context.Background())
	first.poller.Start(ctx)
	deadline := time.Now().Add(time.Second)
	for !first.poller.Status().IsReady() {
		if time.Now().After(deadline) {
			t.Fatal("poller never became ready")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	if err := first.poller.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}

	second := newServerWithMetrics(cfg, logger, testutil.GoodProvider{Data: testutil.SampleDataset()}, metrics.NewRecorder())
	rr := testutil.Serve(second.Handler(), http.MethodGet, "/api/games", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body struct {
		Sessions []any `json:"sessions"`
	}
	testutil.DecodeJSON(t, rr, &body)
	if len(body.Sessions) == 0 {
		t.Fatal("expected sessions restored from snapshot before first poll")
	}
}

func TestSelectProvider(t *testing.T) {
	cfg := testConfig(t)
	if _, ok := selectProvider(cfg, nil).(*fixture.Provider); !ok {
		t.Fatalf("fixture config should build the fixture provider")
	}

	cfg.Provider = "sheets"
	if _, ok := selectProvider(cfg, nil).(*sheets.Client); !ok {
		t.Fatalf("sheets config should build the sheets client")
	}
}

func TestSheetGIDsDropsEmpties(t *testing.T) {
	gids := sheetGIDs(config.SheetsConfig{GIDs: map[string]string{
		"players": "123",
		"globals": "",
	}})
	if len(gids) != 1 {
		t.Fatalf("expected one override, got %v", gids)
	}
	if gids[sheets.Table("players")] != "123" {
		t.Fatalf("players gid = %q", gids[sheets.Table("players")])
	}
}

func TestProviderName(t *testing.T) {
	if got := providerName(""); got != "fixture" {
		t.Errorf("providerName(\"\") = %q", got)
	}
	if got := providerName("Sheets"); got != "sheets" {
		t.Errorf("providerName(Sheets) = %q", got)
	}
}

func TestBuildCommunityStore(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()

	if _, ok := buildCommunityStore(config.CommunityConfig{Backend: "memory"}, logger).(*community.MemoryStore); !ok {
		t.Fatalf("memory backend should build the memory store")
	}
	if _, ok := buildCommunityStore(config.CommunityConfig{Backend: ""}, logger).(*community.MemoryStore); !ok {
		t.Fatalf("empty backend should build the memory store")
	}

	// An unwritable path falls back to memory with a warning.
	store := buildCommunityStore(config.CommunityConfig{Backend: "/nonexistent/dir/community.db"}, logger)
	if _, ok := store.(*community.MemoryStore); !ok {
		t.Fatalf("broken sqlite path should fall back to memory, got %T", store)
	}
	if buf.Len() == 0 {
		t.Fatal("expected a fallback warning to be logged")
	}
}

type stubHTTPServer struct {
	shutdowns atomic.Int32
	serveErr  error
}

func (s *stubHTTPServer) ListenAndServe() error { return s.serveErr }
func (s *stubHTTPServer) Shutdown(context.Context) error {
	s.shutdowns.Add(1)
	return nil
}
func (s *stubHTTPServer) Addr() string          { return ":0" }
func (s *stubHTTPServer) Handler() http.Handler { return http.NotFoundHandler() }

type stubPoller struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (p *stubPoller) Start(context.Context)      { p.started.Add(1) }
func (p *stubPoller) Stop(context.Context) error { p.stopped.Add(1); return nil }
func (p *stubPoller) Status() poller.Status      { return poller.Status{} }

func TestRunShutsDownOnCancel(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	httpSrv := &stubHTTPServer{serveErr: http.ErrServerClosed}
	plr := &stubPoller{}
	srv := newServerWithDeps(testConfig(t), logger, httpSrv, plr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if plr.started.Load() != 1 || plr.stopped.Load() != 1 {
		t.Fatalf("poller started=%d stopped=%d", plr.started.Load(), plr.stopped.Load())
	}
	if httpSrv.shutdowns.Load() != 1 {
		t.Fatalf("http server shutdowns = %d", httpSrv.shutdowns.Load())
	}
}
