package curator

import (
	"fmt"
	"math/rand/v2"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
)

var playlistNames = [...]string{
	"Lemon Fresh", "Irreverent Gusts of Wind", "Earl", "First Break Up",
	"Sonic Daydreams", "Melancholic Sunshine", "Dancing Shadows",
	"Yesterday's Tomorrow", "Midnight Snack", "Cosmic Debris",
	"Pocket Full of Stars", "The Last Bus Home", "Rainy Day Emergency",
	"Secret Menu Items", "Lost and Found Dreams",
}

// NamePicker returns a decorative playlist name.
type NamePicker func() string

// RandomName picks uniformly from the curated name list.
func RandomName() string {
	// #nosec G404 -- cosmetic choice, not security-sensitive
	return playlistNames[rand.IntN(len(playlistNames))]
}

// Assemble packages a parsed reply for the caller.
func Assemble(parsed domain.ParsedResponse, stats domain.PlaylistStats, pick NamePicker) domain.SuggestionResult {
	if pick == nil {
		pick = RandomName
	}
	suggestions := parsed.Suggestions
	if suggestions == nil {
		suggestions = []domain.Suggestion{}
	}
	return domain.SuggestionResult{
		PlaylistName:     pick(),
		UserAnalysis:     Summary(stats),
		UserPersonality:  parsed.Persona,
		LogicApproach:    parsed.Logic,
		FutureAdaptation: parsed.Future,
		Suggestions:      suggestions,
	}
}

// Summary is the one-line description of the listening history.
func Summary(stats domain.PlaylistStats) string {
	if len(stats.TopArtists) == 0 {
		return fmt.Sprintf("Based on %d tracks", stats.TrackCount)
	}
	return fmt.Sprintf("Based on %d tracks, frequently listening to %s", stats.TrackCount, stats.TopArtistsSummary())
}
