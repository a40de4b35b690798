package rest

import (
	"net/http"
)

type playlistResponse struct {
	Tracks []trackPayload `json:"tracks"`
}

// ResolvePlaylist handles GET /playlist?url=
func (h *Handler) ResolvePlaylist(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.svc.ResolvePlaylist(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, playlistResponse{Tracks: fromDomainTracks(tracks)})
}
