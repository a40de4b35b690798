package domain

import (
	"regexp"
	"strings"
)

var playlistIDPattern = regexp.MustCompile(`playlist/([^?]+)`)

// ExtractPlaylistID pulls the identifier out of ".../playlist/<ID>[?...]".
func ExtractPlaylistID(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", &ValidationError{Field: "url", Reason: "no playlist URL provided"}
	}
	m := playlistIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", &ValidationError{Field: "url", Reason: "invalid playlist URL format"}
	}
	return m[1], nil
}
