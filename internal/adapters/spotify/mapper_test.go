package spotify

import "testing"

func TestReleaseYear(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{date: "1997-05-21", want: 1997},
		{date: "1997-05", want: 1997},
		{date: "1997", want: 1997},
		{date: "", want: 0},
		{date: "n/a", want: 0},
		{date: "0000", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			if got := releaseYear(tt.date); got != tt.want {
				t.Fatalf("releaseYear(%q) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}

func TestMapPlaylistItemsSkipsNullTracks(t *testing.T) {
	items := []playlistItem{
		{Track: nil},
		{Track: &spotifyTrack{ID: "a", Name: "Glass", Artists: []spotifyArtist{{Name: "  "}}}},
	}

	tracks := mapPlaylistItems(items)
	if len(tracks) != 1 {
		t.Fatalf("tracks: got %d, want 1", len(tracks))
	}
	if tracks[0].Artist != "Unknown Artist" || tracks[0].Title != "Glass" {
		t.Fatalf("unexpected track: %+v", tracks[0])
	}
}
