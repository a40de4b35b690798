package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned by repositories when an entity does not exist.
var ErrNotFound = errors.New("domain: not found")

// ListeningHistory is a stored set of input tracks that later suggestion
// requests can reference by ID.
type ListeningHistory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	Tracks    []Track   `json:"tracks"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewListeningHistory validates and builds a history.
func NewListeningHistory(id, name, source string, tracks []Track) (*ListeningHistory, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &ValidationError{Field: "id", Reason: "history id cannot be empty"}
	}
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "history name cannot be empty"}
	}
	if len(tracks) == 0 {
		return nil, &ValidationError{Field: "tracks", Reason: "no input tracks"}
	}
	return &ListeningHistory{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Source:    source,
		Tracks:    append([]Track(nil), tracks...),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// HistorySummary is a listing row for a stored history.
type HistorySummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Source     string    `json:"source"`
	TrackCount int       `json:"trackCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Summary returns the listing row for h.
func (h ListeningHistory) Summary() HistorySummary {
	return HistorySummary{
		ID:         h.ID,
		Name:       h.Name,
		Source:     h.Source,
		TrackCount: len(h.Tracks),
		CreatedAt:  h.CreatedAt,
	}
}
