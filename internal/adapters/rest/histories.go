package rest

import (
	"net/http"
	"strings"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
)

type createHistoryRequest struct {
	Name   string         `json:"name"`
	Source string         `json:"source"`
	Tracks []trackPayload `json:"tracks"`
	Lines  []string       `json:"lines"`
}

// CreateHistory handles POST /histories. Tracks may be sent structured or
// as "Artist - Title" lines; both are stored.
func (h *Handler) CreateHistory(w http.ResponseWriter, r *http.Request) {
	var req createHistoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tracks := toDomainTracks(req.Tracks)
	tracks = append(tracks, domain.ParseTrackLines(req.Lines)...)
	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = "api"
	}

	history, err := h.svc.ImportHistory(r.Context(), req.Name, source, tracks)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", "/histories/"+history.ID)
	writeJSON(w, http.StatusCreated, history)
}

// GetHistory handles GET /histories/{id}
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.svc.GetHistory(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// ListHistories handles GET /histories
func (h *Handler) ListHistories(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ListHistories(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if rows == nil {
		rows = []domain.HistorySummary{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"histories": rows})
}
