package rest

import (
	"net/http"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
	"github.com/ewilliams-labs/deepcuts/internal/core/services"
)

type trackPayload struct {
	Artist string   `json:"artist"`
	Title  string   `json:"title"`
	Genre  []string `json:"genre"`
	Year   int      `json:"year,omitempty"`
}

func (p trackPayload) toDomain() domain.Track {
	return domain.Track{Artist: p.Artist, Title: p.Title, Genres: p.Genre, Year: p.Year}
}

func toDomainTracks(in []trackPayload) []domain.Track {
	out := make([]domain.Track, 0, len(in))
	for _, p := range in {
		out = append(out, p.toDomain())
	}
	return out
}

func fromDomainTracks(in []domain.Track) []trackPayload {
	out := make([]trackPayload, 0, len(in))
	for _, t := range in {
		genre := t.Genres
		if genre == nil {
			genre = []string{}
		}
		out = append(out, trackPayload{Artist: t.Artist, Title: t.Title, Genre: genre, Year: t.Year})
	}
	return out
}

// suggestRequest is the POST /suggestions body. Craziness is the older
// name for weirdness and is used only when weirdness is absent.
type suggestRequest struct {
	Tracks      []trackPayload `json:"tracks"`
	Keywords    string         `json:"keywords"`
	Persona     string         `json:"persona"`
	Decade      string         `json:"decade"`
	SongCount   int            `json:"songCount"`
	Obscurity   int            `json:"obscurity"`
	Weirdness   *int           `json:"weirdness"`
	Craziness   *int           `json:"craziness"`
	Region      string         `json:"region"`
	Verify      bool           `json:"verify"`
	HistoryID   string         `json:"historyId"`
	PlaylistURL string         `json:"playlistUrl"`
}

func (req suggestRequest) toInput() services.SuggestInput {
	weirdness := 0
	switch {
	case req.Weirdness != nil:
		weirdness = *req.Weirdness
	case req.Craziness != nil:
		weirdness = *req.Craziness
	}
	return services.SuggestInput{
		Request: domain.SuggestionRequest{
			Obscurity: req.Obscurity,
			Weirdness: weirdness,
			Decade:    req.Decade,
			Keywords:  req.Keywords,
			Persona:   req.Persona,
			SongCount: req.SongCount,
			Region:    req.Region,
			Verify:    req.Verify,
		},
		Tracks:      toDomainTracks(req.Tracks),
		HistoryID:   req.HistoryID,
		PlaylistURL: req.PlaylistURL,
	}
}

// Suggest handles POST /suggestions
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Suggest(r.Context(), req.toInput())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
