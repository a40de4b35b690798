package domain

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// UnknownArtist replaces a missing artist on catalog tracks.
	UnknownArtist = "Unknown Artist"
	// UnknownTitle replaces a missing title on catalog tracks.
	UnknownTitle = "Unknown Title"

	lineSeparator   = " - "
	artistDelimiter = ";"
)

var titleYearPattern = regexp.MustCompile(`\((\d{4})\)`)

// Track represents one entry of a listener's history.
// Empty Artist or Title means the field was absent in the source.
type Track struct {
	ID     string   `json:"id,omitempty"`
	Artist string   `json:"artist"`
	Title  string   `json:"title"`
	Album  string   `json:"album,omitempty"`
	Genres []string `json:"genre,omitempty"`
	Year   int      `json:"year,omitempty"`
}

// ParseTrackLine converts one "Artist - Title" row into a Track.
// Only the first separator splits; a row without one becomes a title-only track.
func ParseTrackLine(line string) Track {
	artist, title, found := strings.Cut(line, lineSeparator)
	if !found {
		return Track{Title: strings.TrimSpace(line)}
	}
	return Track{
		Artist: strings.TrimSpace(artist),
		Title:  strings.TrimSpace(title),
	}
}

// ParseTrackLines normalizes delimited text rows, skipping blank ones.
func ParseTrackLines(lines []string) []Track {
	tracks := make([]Track, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tracks = append(tracks, ParseTrackLine(line))
	}
	return tracks
}

// Artists splits a multi-valued artist credit ("A; B") into its members.
func (t Track) Artists() []string {
	if strings.TrimSpace(t.Artist) == "" {
		return nil
	}
	parts := strings.Split(t.Artist, artistDelimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ReleaseYear returns the explicit year, or one embedded in the title as "(YYYY)".
// The second result is false when neither exists.
func (t Track) ReleaseYear() (int, bool) {
	if t.Year > 0 {
		return t.Year, true
	}
	m := titleYearPattern.FindStringSubmatch(t.Title)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}

// DisplayArtist returns the artist or the unknown placeholder.
func (t Track) DisplayArtist() string {
	if a := strings.TrimSpace(t.Artist); a != "" {
		return a
	}
	return UnknownArtist
}

// DisplayTitle returns the title or the unknown placeholder.
func (t Track) DisplayTitle() string {
	if s := strings.TrimSpace(t.Title); s != "" {
		return s
	}
	return UnknownTitle
}
