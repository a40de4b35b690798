package spotify

import (
	"strconv"
	"strings"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
)

// mapTrackToDomain converts a raw catalog track to a domain track.
// Only the first credited artist is kept.
func mapTrackToDomain(st spotifyTrack) domain.Track {
	artist := ""
	if len(st.Artists) > 0 {
		artist = strings.TrimSpace(st.Artists[0].Name)
	}
	if artist == "" {
		artist = domain.UnknownArtist
	}
	title := strings.TrimSpace(st.Name)
	if title == "" {
		title = domain.UnknownTitle
	}

	return domain.Track{
		ID:     st.ID,
		Artist: artist,
		Title:  title,
		Album:  st.Album.Name,
		Year:   releaseYear(st.Album.ReleaseDate),
	}
}

// mapPlaylistItems skips items whose track is null.
func mapPlaylistItems(items []playlistItem) []domain.Track {
	tracks := make([]domain.Track, 0, len(items))
	for _, item := range items {
		if item.Track == nil {
			continue
		}
		tracks = append(tracks, mapTrackToDomain(*item.Track))
	}
	return tracks
}

// releaseYear reads the year from "1997", "1997-05" or "1997-05-21".
func releaseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil || year <= 0 {
		return 0
	}
	return year
}

func mapMatch(st spotifyTrack, score float64) domain.CatalogMatch {
	return domain.CatalogMatch{
		ID:    st.ID,
		URI:   st.URI,
		URL:   st.ExternalURLs.Spotify,
		Score: score,
	}
}
