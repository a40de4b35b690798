package domain

import (
	"sort"
	"strings"
)

const topArtistLimit = 3

// DecadeCount is a decade bucket, e.g. {1990, 12}.
type DecadeCount struct {
	Decade int `json:"decade"`
	Count  int `json:"count"`
}

// PlaylistStats aggregates a listening history.
type PlaylistStats struct {
	TrackCount  int            `json:"trackCount"`
	ArtistCount map[string]int `json:"artistCount"`
	GenreCount  map[string]int `json:"genreCount"`
	DecadeCount map[int]int    `json:"decadeCount"`
	TopDecade   *DecadeCount   `json:"topDecade,omitempty"`
	TopArtists  []string       `json:"topArtists"`
}

// Analyze computes PlaylistStats. Ties are broken by first appearance so the
// result only depends on input order.
func Analyze(tracks []Track) PlaylistStats {
	stats := PlaylistStats{
		TrackCount:  len(tracks),
		ArtistCount: map[string]int{},
		GenreCount:  map[string]int{},
		DecadeCount: map[int]int{},
		TopArtists:  []string{},
	}

	var artistOrder []string
	var decadeOrder []int

	for _, t := range tracks {
		for _, artist := range t.Artists() {
			if _, seen := stats.ArtistCount[artist]; !seen {
				artistOrder = append(artistOrder, artist)
			}
			stats.ArtistCount[artist]++
		}

		for _, genre := range t.Genres {
			if genre = strings.TrimSpace(genre); genre != "" {
				stats.GenreCount[genre]++
			}
		}

		if year, ok := t.ReleaseYear(); ok {
			decade := year / 10 * 10
			if _, seen := stats.DecadeCount[decade]; !seen {
				decadeOrder = append(decadeOrder, decade)
			}
			stats.DecadeCount[decade]++
		}
	}

	for _, decade := range decadeOrder {
		count := stats.DecadeCount[decade]
		if stats.TopDecade == nil || count > stats.TopDecade.Count {
			stats.TopDecade = &DecadeCount{Decade: decade, Count: count}
		}
	}

	ranked := append([]string(nil), artistOrder...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return stats.ArtistCount[ranked[i]] > stats.ArtistCount[ranked[j]]
	})
	if len(ranked) > topArtistLimit {
		ranked = ranked[:topArtistLimit]
	}
	stats.TopArtists = append(stats.TopArtists, ranked...)

	return stats
}

// TopArtistsSummary renders the top artists as a comma separated list.
func (s PlaylistStats) TopArtistsSummary() string {
	return strings.Join(s.TopArtists, ", ")
}
