package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Dosada05/tournament-site/render"
	"github.com/Dosada05/tournament-site/services"
	"github.com/go-chi/chi/v5"
)

type SiteHandler struct {
	store  *services.SnapshotStore
	logger *slog.Logger
}

func NewSiteHandler(store *services.SnapshotStore, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{store: store, logger: logger}
}

// Index renders the results page of the latest snapshot with live reload.
func (h *SiteHandler) Index(w http.ResponseWriter, r *http.Request) {
	snapshot := h.store.Get()
	if snapshot == nil {
		unavailableResponse(w, r, h.logger)
		return
	}
	page, err := render.HTML(snapshot, render.Options{LiveReload: true})
	if err != nil {
		serverErrorResponse(w, r, h.logger, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// Snapshot serves standings.json exactly as written to disk.
func (h *SiteHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	snapshot := h.store.Get()
	if snapshot == nil {
		unavailableResponse(w, r, h.logger)
		return
	}
	doc, err := render.JSON(snapshot)
	if err != nil {
		serverErrorResponse(w, r, h.logger, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (h *SiteHandler) GroupStandings(w http.ResponseWriter, r *http.Request) {
	snapshot := h.store.Get()
	if snapshot == nil {
		unavailableResponse(w, r, h.logger)
		return
	}
	label := chi.URLParam(r, "group")
	rows, ok := snapshot.Standings[label]
	if !ok {
		notFoundResponse(w, r, h.logger, fmt.Sprintf("group %q not found", label))
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"group": label, "standings": rows}, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

func (h *SiteHandler) Crosses(w http.ResponseWriter, r *http.Request) {
	snapshot := h.store.Get()
	if snapshot == nil {
		unavailableResponse(w, r, h.logger)
		return
	}
	if err := writeJSON(w, http.StatusOK, snapshot.Crosses, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

func (h *SiteHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := jsonResponse{"status": "ok"}
	if snapshot := h.store.Get(); snapshot != nil {
		status["updated_at"] = snapshot.UpdatedAt
	}
	if err := writeJSON(w, http.StatusOK, status, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
