package curator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
)

func TestAssemble(t *testing.T) {
	stats := domain.Analyze([]domain.Track{
		{Artist: "Can"}, {Artist: "Can"}, {Artist: "Neu!"}, {Artist: "Faust"}, {Artist: "Cluster"},
	})
	parsed := domain.ParsedResponse{
		Persona: "p",
		Logic:   "l",
		Future:  "f",
		Suggestions: []domain.Suggestion{
			{Artist: "Harmonia", Title: "Watussi", Year: "1974", Obscurity: 7, Weirdness: 6, Rationale: "r"},
		},
	}

	got := Assemble(parsed, stats, func() string { return "Cosmic Debris" })

	assert.Equal(t, domain.SuggestionResult{
		PlaylistName:     "Cosmic Debris",
		UserAnalysis:     "Based on 5 tracks, frequently listening to Can, Neu!, Faust",
		UserPersonality:  "p",
		LogicApproach:    "l",
		FutureAdaptation: "f",
		Suggestions:      parsed.Suggestions,
	}, got)
}

func TestAssemble_EmptySuggestionsStayNonNil(t *testing.T) {
	got := Assemble(domain.ParsedResponse{}, domain.Analyze(nil), func() string { return "Earl" })

	assert.NotNil(t, got.Suggestions)
	assert.Empty(t, got.Suggestions)
	assert.Equal(t, "Based on 0 tracks", got.UserAnalysis)
}

func TestRandomName_FromCuratedList(t *testing.T) {
	names := playlistNames[:]
	for i := 0; i < 50; i++ {
		assert.Contains(t, names, RandomName())
	}
}
