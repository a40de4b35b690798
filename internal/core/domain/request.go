package domain

import "strings"

const (
	// DefaultSongCount applies when a request does not ask for a count.
	DefaultSongCount = 8
	// MaxSongCount bounds a single generation.
	MaxSongCount = 50
	// AnyDecade disables the era constraint.
	AnyDecade = "any"
)

// SuggestionRequest holds the user-supplied knobs for one generation.
// Obscurity and Weirdness are forwarded to the instruction text untouched.
type SuggestionRequest struct {
	Obscurity int    `json:"obscurity"`
	Weirdness int    `json:"weirdness"`
	Decade    string `json:"decade"`
	Keywords  string `json:"keywords"`
	Persona   string `json:"persona"`
	SongCount int    `json:"songCount"`
	Region    string `json:"region"`
	Verify    bool   `json:"verify,omitempty"`
}

// Normalized returns a copy with SongCount clamped to [1, MaxSongCount]
// and empty text knobs defaulted.
func (r SuggestionRequest) Normalized() SuggestionRequest {
	switch {
	case r.SongCount <= 0:
		r.SongCount = DefaultSongCount
	case r.SongCount > MaxSongCount:
		r.SongCount = MaxSongCount
	}
	r.Decade = strings.TrimSpace(r.Decade)
	if r.Decade == "" {
		r.Decade = AnyDecade
	}
	r.Persona = strings.TrimSpace(r.Persona)
	r.Region = strings.TrimSpace(r.Region)
	r.Keywords = strings.TrimSpace(r.Keywords)
	return r
}
