package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"amongus-stats-service/internal/app/boards"
	"amongus-stats-service/internal/app/tiers"
	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/logging"
)

// Tier serves the consensus list on GET and accepts a submission on POST.
func (h *Handler) Tier(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.tierConsensus(w, r)
	case http.MethodPost:
		h.tierSubmit(w, r)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) tierConsensus(w http.ResponseWriter, r *http.Request) {
	consensus, err := h.tiers.Consensus(r.Context())
	if err != nil {
		loggerFromContext(r, h.logger).Error("tier consensus failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "failed to load tier list", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, consensus, h.logger)
}

func (h *Handler) tierSubmit(w http.ResponseWriter, r *http.Request) {
	var sub domain.TierSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}
	if err := h.tiers.Save(r.Context(), sub); err != nil {
		if errors.Is(err, tiers.ErrInvalidSubmission) {
			writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
			return
		}
		loggerFromContext(r, h.logger).Error("tier save failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "failed to save tier list", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// TierByUser returns one user's own submission.
func (h *Handler) TierByUser(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	userID, err := url.PathUnescape(strings.TrimPrefix(r.URL.Path, "/api/tier/"))
	if err != nil || userID == "" || strings.Contains(userID, "/") {
		writeError(w, r, http.StatusBadRequest, "invalid user id", h.logger)
		return
	}
	sub, found, err := h.tiers.UserList(r.Context(), userID)
	if err != nil {
		loggerFromContext(r, h.logger).Error("tier lookup failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "failed to load tier list", h.logger)
		return
	}
	if !found {
		writeError(w, r, http.StatusNotFound, "no submission for user", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, sub, h.logger)
}

// Comments serves the newest comments on GET and accepts one on POST.
func (h *Handler) Comments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listComments(w, r)
	case http.MethodPost:
		h.postComment(w, r)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		limit = v
	}
	comments, err := h.boards.Comments(r.Context(), limit)
	if err != nil {
		loggerFromContext(r, h.logger).Error("comment list failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "failed to load comments", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"comments": comments}, h.logger)
}

func (h *Handler) postComment(w http.ResponseWriter, r *http.Request) {
	var c domain.Comment
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}
	stored, err := h.boards.PostComment(r.Context(), c)
	if err != nil {
		if errors.Is(err, boards.ErrInvalidComment) {
			writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
			return
		}
		loggerFromContext(r, h.logger).Error("comment save failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "failed to save comment", h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, stored, h.logger)
}

// Petition returns the live count plus archived petitions.
func (h *Handler) Petition(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	petition, err := h.boards.Petition(r.Context())
	if err != nil {
		loggerFromContext(r, h.logger).Error("petition load failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "failed to load petition", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, petition, h.logger)
}

// SignPetition adds one signature to the live petition.
func (h *Handler) SignPetition(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	count, err := h.boards.Sign(r.Context())
	if err != nil {
		loggerFromContext(r, h.logger).Error("petition sign failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "failed to sign petition", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count}, h.logger)
}

// ArchivePetition closes the live petition. Guarded by ADMIN_TOKEN; returns
// 401 if missing or invalid.
func (h *Handler) ArchivePetition(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String("path", r.URL.Path),
			slog.String("client_ip", clientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	var body struct {
		VideoID string `json:"videoId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}
	if err := h.boards.Archive(r.Context(), body.VideoID); err != nil {
		loggerFromContext(r, h.logger).Error("petition archive failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "failed to archive petition", h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "petition archived", slog.String("video_id", body.VideoID))
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

func (h *Handler) authorize(r *http.Request) bool {
	if h.adminToken == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.adminToken
}
