package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
)

type countingCatalog struct {
	calls  int
	tracks []domain.Track
	err    error
}

func (c *countingCatalog) GetPlaylistTracks(_ context.Context, _ string) ([]domain.Track, error) {
	c.calls++
	return c.tracks, c.err
}

func TestPlaylistCache_HitsAfterFirstLookup(t *testing.T) {
	inner := &countingCatalog{tracks: []domain.Track{{Artist: "Can", Title: "Vitamin C"}}}
	c := NewPlaylistCache(inner, 4, time.Minute)

	first, err := c.GetPlaylistTracks(context.Background(), "p1")
	require.NoError(t, err)
	first[0].Title = "mutated by caller"

	second, err := c.GetPlaylistTracks(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, "Vitamin C", second[0].Title)
}

func TestPlaylistCache_ErrorsAreNotCached(t *testing.T) {
	inner := &countingCatalog{err: errors.New("boom")}
	c := NewPlaylistCache(inner, 4, time.Minute)

	_, err := c.GetPlaylistTracks(context.Background(), "p1")
	require.Error(t, err)
	_, err = c.GetPlaylistTracks(context.Background(), "p1")
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestPlaylistCache_Expires(t *testing.T) {
	inner := &countingCatalog{tracks: []domain.Track{{Title: "x"}}}
	c := NewPlaylistCache(inner, 4, 20*time.Millisecond)

	_, _ = c.GetPlaylistTracks(context.Background(), "p1")
	time.Sleep(60 * time.Millisecond)
	_, _ = c.GetPlaylistTracks(context.Background(), "p1")

	assert.Equal(t, 2, inner.calls)
}

func TestNewPlaylistCache_Disabled(t *testing.T) {
	inner := &countingCatalog{}
	assert.Same(t, inner, NewPlaylistCache(inner, 0, time.Minute))
}
