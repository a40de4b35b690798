package domain

import (
	"reflect"
	"testing"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name          string
		tracks        []Track
		wantArtists   map[string]int
		wantDecades   map[int]int
		wantTopDecade *DecadeCount
		wantTop       []string
	}{
		{
			name:          "empty input",
			tracks:        nil,
			wantArtists:   map[string]int{},
			wantDecades:   map[int]int{},
			wantTopDecade: nil,
			wantTop:       []string{},
		},
		{
			name:          "multi-valued artist field counts each member",
			tracks:        []Track{{Artist: "A; B; A", Title: "Collab"}},
			wantArtists:   map[string]int{"A": 2, "B": 1},
			wantDecades:   map[int]int{},
			wantTopDecade: nil,
			wantTop:       []string{"A", "B"},
		},
		{
			name: "decades from titles",
			tracks: []Track{
				{Artist: "P", Title: "X (1994)"},
				{Artist: "Q", Title: "Y (1997)"},
				{Artist: "R", Title: "Z (2001)"},
			},
			wantArtists:   map[string]int{"P": 1, "Q": 1, "R": 1},
			wantDecades:   map[int]int{1990: 2, 2000: 1},
			wantTopDecade: &DecadeCount{Decade: 1990, Count: 2},
			wantTop:       []string{"P", "Q", "R"},
		},
		{
			name: "decade tie keeps first encountered",
			tracks: []Track{
				{Title: "Late (2005)"},
				{Title: "Early (1975)"},
			},
			wantArtists:   map[string]int{},
			wantDecades:   map[int]int{2000: 1, 1970: 1},
			wantTopDecade: &DecadeCount{Decade: 2000, Count: 1},
			wantTop:       []string{},
		},
		{
			name: "top artists limited to three with insertion-order ties",
			tracks: []Track{
				{Artist: "D"}, {Artist: "C"}, {Artist: "B"}, {Artist: "A"}, {Artist: "A"},
			},
			wantArtists:   map[string]int{"A": 2, "B": 1, "C": 1, "D": 1},
			wantDecades:   map[int]int{},
			wantTopDecade: nil,
			wantTop:       []string{"A", "D", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.tracks)
			if !reflect.DeepEqual(got.ArtistCount, tt.wantArtists) {
				t.Fatalf("ArtistCount: got %v, want %v", got.ArtistCount, tt.wantArtists)
			}
			if !reflect.DeepEqual(got.DecadeCount, tt.wantDecades) {
				t.Fatalf("DecadeCount: got %v, want %v", got.DecadeCount, tt.wantDecades)
			}
			if !reflect.DeepEqual(got.TopDecade, tt.wantTopDecade) {
				t.Fatalf("TopDecade: got %+v, want %+v", got.TopDecade, tt.wantTopDecade)
			}
			if !reflect.DeepEqual(got.TopArtists, tt.wantTop) {
				t.Fatalf("TopArtists: got %v, want %v", got.TopArtists, tt.wantTop)
			}
			if got.TrackCount != len(tt.tracks) {
				t.Fatalf("TrackCount: got %d, want %d", got.TrackCount, len(tt.tracks))
			}
		})
	}
}

func TestAnalyze_Genres(t *testing.T) {
	got := Analyze([]Track{
		{Genres: []string{"krautrock", " shoegaze "}},
		{Genres: []string{"krautrock", ""}},
	})
	want := map[string]int{"krautrock": 2, "shoegaze": 1}
	if !reflect.DeepEqual(got.GenreCount, want) {
		t.Fatalf("GenreCount: got %v, want %v", got.GenreCount, want)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	tracks := []Track{{Artist: "B"}, {Artist: "A"}, {Artist: "C"}, {Artist: "D"}}
	first := Analyze(tracks)
	for i := 0; i < 20; i++ {
		if got := Analyze(tracks); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}
