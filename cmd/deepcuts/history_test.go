package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultHistoryName(t *testing.T) {
	assert.Equal(t, "road-trip", defaultHistoryName([]string{"/tmp/road-trip.csv"}, ""))
	assert.Equal(t, "playlist", defaultHistoryName(nil, "https://open.spotify.com/playlist/abc"))
	assert.Equal(t, "stdin", defaultHistoryName(nil, ""))
}
