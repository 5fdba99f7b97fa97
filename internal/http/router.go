// Package http assembles the API routes.
package http

import (
	nethttp "net/http"

	"amongus-stats-service/internal/http/handlers"
)

// NewRouter registers the API routes on a ServeMux.
func NewRouter(h *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()

	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)

	mux.HandleFunc("/api/games", h.Sessions)
	mux.HandleFunc("/api/maps", h.Maps)
	mux.HandleFunc("/api/maps/", h.MapRoutes)
	mux.HandleFunc("/api/players", h.Players)
	mux.HandleFunc("/api/players/", h.PlayerRoutes)
	mux.HandleFunc("/api/stats/overview", h.Overview)
	mux.HandleFunc("/api/stats/latest-video", h.LatestVideo)

	mux.HandleFunc("/api/tier", h.Tier)
	mux.HandleFunc("/api/tier/", h.TierByUser)
	mux.HandleFunc("/api/comments", h.Comments)
	mux.HandleFunc("/api/petition", h.Petition)
	mux.HandleFunc("/api/petition/sign", h.SignPetition)
	mux.HandleFunc("/api/petition/archive", h.ArchivePetition)

	return mux
}
