// Package server wires configuration, providers, stores, and the HTTP API
// into one runnable unit.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"amongus-stats-service/internal/app/boards"
	"amongus-stats-service/internal/app/games"
	"amongus-stats-service/internal/app/maps"
	"amongus-stats-service/internal/app/overview"
	"amongus-stats-service/internal/app/players"
	"amongus-stats-service/internal/app/tiers"
	"amongus-stats-service/internal/community"
	"amongus-stats-service/internal/config"
	apihttp "amongus-stats-service/internal/http"
	"amongus-stats-service/internal/http/handlers"
	"amongus-stats-service/internal/http/middleware"
	"amongus-stats-service/internal/logging"
	"amongus-stats-service/internal/metrics"
	"amongus-stats-service/internal/poller"
	"amongus-stats-service/internal/providers"
	"amongus-stats-service/internal/snapshots"
	"amongus-stats-service/internal/store"
	"amongus-stats-service/internal/youtube"
)

var metricsSetup = metrics.Setup

// Server owns the whole service: poller, stores, and both HTTP listeners.
type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          *store.MemoryStore
	communityStore community.Store
	httpServer     httpServer
	metricsServer  httpServer
	poller         Poller
	metricsStop    func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DatasetProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DatasetProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, recorder, providerName(cfg.Provider), 0, 0)
	}

	memoryStore := store.NewMemoryStore()
	communityStore := buildCommunityStore(cfg.Community, logger)
	snapStore := snapshots.NewFSStore(cfg.SnapshotDir)
	warmStart(memoryStore, snapStore, logger)

	plr := poller.New(provider, memoryStore, snapStore, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, memoryStore, communityStore, logger, recorder, plr)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		store:          memoryStore,
		communityStore: communityStore,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		poller:         plr,
		metricsStop:    metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

// warmStart preloads the last persisted dataset so a restarted server can
// answer before its first poll lands.
func warmStart(memoryStore *store.MemoryStore, snapStore *snapshots.FSStore, logger *slog.Logger) {
	dataset, err := snapStore.LoadDataset()
	if err != nil {
		if !errors.Is(err, snapshots.ErrNoSnapshot) {
			logging.Warn(logger, "dataset snapshot load failed", "err", err)
		}
		return
	}
	memoryStore.SetDataset(dataset)
	logging.Info(logger, "dataset restored from snapshot",
		slog.Int("games", len(dataset.Games)),
		slog.Int("players", len(dataset.Players)),
	)
}

func buildHTTPServer(cfg config.Config, memoryStore *store.MemoryStore, communityStore community.Store, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	feed := buildFeedClient(cfg.YouTube, logger)
	handler := handlers.NewHandler(handlers.Services{
		Games:    games.NewService(memoryStore),
		Maps:     maps.NewService(memoryStore),
		Players:  players.NewService(memoryStore),
		Overview: overview.NewService(memoryStore, feed),
		Tiers:    tiers.NewService(communityStore),
		Boards:   boards.NewService(communityStore),
	}, cfg.AdminToken, logger, statusFn)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.Logging(logger, recorder, apihttp.NewRouter(handler))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

func buildFeedClient(cfg config.YouTubeConfig, logger *slog.Logger) *youtube.FeedClient {
	channels := make([]youtube.Channel, 0, len(cfg.Channels))
	for _, ch := range cfg.Channels {
		channels = append(channels, youtube.Channel{Name: ch.Name, ID: ch.ID})
	}
	return youtube.NewFeedClient(channels, nil, logger)
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the poller and HTTP servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.communityStore != nil {
		if err := s.communityStore.Close(); err != nil && s.logger != nil {
			s.logger.Warn("community store close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
