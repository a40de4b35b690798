// Package curator turns listening statistics into an instruction for the
// generative service and turns the service's free-text reply back into
// typed suggestions.
package curator

import (
	"fmt"
	"strings"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
)

// Compose builds the instruction sent to the generative service. It is pure:
// identical inputs always produce identical text, and it never fails.
func Compose(stats domain.PlaylistStats, req domain.SuggestionRequest, tracks []domain.Track) string {
	req = req.Normalized()
	var b strings.Builder

	// role
	b.WriteString(PersonaDescription(req.Persona))
	if req.Region != "" {
		fmt.Fprintf(&b, " Focus on music from this region: %s.", RegionLabel(req.Region))
	}
	b.WriteString("\nYou have a deep understanding of song popularity and experimental nature.\n\n")

	fmt.Fprintf(&b, "OBSCURITY SCALE (%d/10 requested):\n", req.Obscurity)
	b.WriteString("1-3: Major hits, everyone knows these\n")
	b.WriteString("4-6: Minor hits, music enthusiasts know these\n")
	b.WriteString("7-8: Deep cuts, dedicated fans know these\n")
	b.WriteString("9-10: True hidden gems, very few people know these\n\n")

	fmt.Fprintf(&b, "WEIRDNESS SCALE (%d/10 requested):\n", req.Weirdness)
	b.WriteString("1-3: Conventional pop/rock structure, familiar sounds\n")
	b.WriteString("4-6: Slight experimentation, unusual elements\n")
	b.WriteString("7-8: Clearly experimental, unconventional structure\n")
	b.WriteString("9-10: Avant-garde, highly experimental\n\n")

	b.WriteString("User's Current Playlist:\n")
	if len(tracks) == 0 {
		b.WriteString("(no tracks provided)\n")
	}
	for _, t := range tracks {
		fmt.Fprintf(&b, "- %s - %s\n", t.DisplayArtist(), t.DisplayTitle())
	}
	b.WriteString("\n")

	topArtists := stats.TopArtistsSummary()
	if topArtists == "" {
		topArtists = "none"
	}
	fmt.Fprintf(&b, "Top Artists: %s\n\n", topArtists)

	b.WriteString("Additional Preferences:\n")
	fmt.Fprintf(&b, "- Era preference: %s\n", EraLabel(req.Decade))
	keywords := req.Keywords
	if keywords == "" {
		keywords = "none"
	}
	fmt.Fprintf(&b, "- Keywords/mood: %s\n\n", keywords)

	fmt.Fprintf(&b, "IMPORTANT: All song suggestions MUST match the requested weirdness (%d/10) and obscurity (%d/10) levels.\n",
		req.Weirdness, req.Obscurity)
	b.WriteString("Stay within +/- 1 point of these targets.\n\n")

	b.WriteString("Provide:\n")
	b.WriteString("1. PERSONA: Create a music personality profile\n")
	b.WriteString("2. LOGIC: Explain your recommendation strategy\n")
	fmt.Fprintf(&b, "3. Exactly %d SONGS: Artist - Title (Year) [Obscurity: %d/10, Weirdness: %d/10] (Why)\n",
		req.SongCount, req.Obscurity, req.Weirdness)
	b.WriteString("4. FUTURE: Adaptation strategy\n\n")

	b.WriteString("Use exact format, one item per line:\n")
	fmt.Fprintf(&b, "%s <text>\n", personaPrefix)
	fmt.Fprintf(&b, "%s <text>\n", logicPrefix)
	b.WriteString(songTemplate + "\n")
	fmt.Fprintf(&b, "%s <text>", futurePrefix)

	return b.String()
}
