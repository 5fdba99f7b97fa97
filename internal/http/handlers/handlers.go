// Package handlers implements the API endpoints over the app services.
package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"amongus-stats-service/internal/app/boards"
	"amongus-stats-service/internal/app/games"
	"amongus-stats-service/internal/app/maps"
	"amongus-stats-service/internal/app/overview"
	"amongus-stats-service/internal/app/players"
	"amongus-stats-service/internal/app/tiers"
	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/poller"
	"amongus-stats-service/internal/stats"
)

// Handler wires HTTP routes to the app services.
type Handler struct {
	games    *games.Service
	maps     *maps.Service
	players  *players.Service
	overview *overview.Service
	tiers    *tiers.Service
	boards   *boards.Service

	adminToken string
	logger     *slog.Logger
	statusFn   func() poller.Status
}

// Services bundles the app services a Handler routes to.
type Services struct {
	Games    *games.Service
	Maps     *maps.Service
	Players  *players.Service
	Overview *overview.Service
	Tiers    *tiers.Service
	Boards   *boards.Service
}

// NewHandler constructs a Handler.
func NewHandler(svcs Services, adminToken string, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		games:      svcs.Games,
		maps:       svcs.Maps,
		players:    svcs.Players,
		overview:   svcs.Overview,
		tiers:      svcs.Tiers,
		boards:     svcs.Boards,
		adminToken: adminToken,
		logger:     logger,
		statusFn:   statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

type sessionsResponse struct {
	Sessions []domain.Session `json:"sessions"`
	stats.Page
}

// Sessions returns the session list, newest first, paginated.
func (h *Handler) Sessions(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	page, limit := pageParams(r)
	sessions, info := h.games.Sessions(page, limit)
	writeJSON(w, http.StatusOK, sessionsResponse{Sessions: sessions, Page: info}, h.logger)
}

// Maps returns every map with its play count.
func (h *Handler) Maps(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"maps": h.maps.Maps()}, h.logger)
}

// MapRoutes dispatches /api/maps/{mapName}/games.
func (h *Handler) MapRoutes(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/maps/")
	mapName, tail, found := strings.Cut(rest, "/")
	mapName, err := url.PathUnescape(mapName)
	if err != nil || mapName == "" {
		writeError(w, r, http.StatusBadRequest, "invalid map name", h.logger)
		return
	}
	if !found || tail != "games" {
		writeError(w, r, http.StatusNotFound, "not found", h.logger)
		return
	}
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	page, limit := pageParams(r)
	sessions, info := h.maps.Sessions(mapName, page, limit)
	writeJSON(w, http.StatusOK, sessionsResponse{Sessions: sessions, Page: info}, h.logger)
}

// Players returns every player's stats row.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"players": h.players.Players()}, h.logger)
}

// PlayerRoutes dispatches /api/players/{name} and /api/players/{name}/games.
func (h *Handler) PlayerRoutes(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/players/")
	name, tail, found := strings.Cut(rest, "/")
	name, err := url.PathUnescape(name)
	if err != nil || name == "" {
		writeError(w, r, http.StatusBadRequest, "invalid player name", h.logger)
		return
	}

	switch {
	case !found || tail == "":
		h.playerProfile(w, r, name)
	case tail == "games":
		h.playerGames(w, r, name)
	default:
		writeError(w, r, http.StatusNotFound, "not found", h.logger)
	}
}

func (h *Handler) playerProfile(w http.ResponseWriter, r *http.Request, name string) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	profile, ok := h.players.Profile(name)
	if !ok {
		writeError(w, r, http.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, profile, h.logger)
}

type playerGamesResponse struct {
	Games []domain.PlayerGame `json:"games"`
	stats.Page
}

func (h *Handler) playerGames(w http.ResponseWriter, r *http.Request, name string) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	page, limit := pageParams(r)
	playerGames, info := h.players.Games(name, page, limit)
	writeJSON(w, http.StatusOK, playerGamesResponse{Games: playerGames, Page: info}, h.logger)
}

// Overview returns the dashboard headline numbers.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	view, loaded := h.overview.Overview()
	if !loaded {
		writeError(w, r, http.StatusServiceUnavailable, "dataset not loaded yet", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

// LatestVideo returns the newest series upload across the configured
// channels.
func (h *Handler) LatestVideo(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	video, err := h.overview.LatestVideo(r.Context())
	if err != nil {
		logger.Warn("latest video lookup failed", "err", err)
		writeError(w, r, http.StatusBadGateway, "failed to reach channel feeds", h.logger)
		return
	}
	if video == nil {
		writeError(w, r, http.StatusNotFound, "no matching video found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, video, h.logger)
}

// pageParams reads the page and limit query parameters. Absent or malformed
// values come back as zero so services apply their defaults.
func pageParams(r *http.Request) (page, limit int) {
	q := r.URL.Query()
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		limit = v
	}
	return page, limit
}
