// Package cache memoises catalog playlist lookups.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
	"github.com/ewilliams-labs/deepcuts/internal/core/ports"
	"github.com/ewilliams-labs/deepcuts/internal/metrics"
)

// PlaylistCache decorates a CatalogProvider with an expiring LRU keyed by
// playlist id. Errors are never cached.
type PlaylistCache struct {
	next  ports.CatalogProvider
	cache *expirable.LRU[string, []domain.Track]
}

var _ ports.CatalogProvider = (*PlaylistCache)(nil)

// NewPlaylistCache wraps next. A size <= 0 returns next unchanged.
func NewPlaylistCache(next ports.CatalogProvider, size int, ttl time.Duration) ports.CatalogProvider {
	if size <= 0 {
		return next
	}
	return &PlaylistCache{
		next:  next,
		cache: expirable.NewLRU[string, []domain.Track](size, nil, ttl),
	}
}

func (c *PlaylistCache) GetPlaylistTracks(ctx context.Context, playlistID string) ([]domain.Track, error) {
	if tracks, ok := c.cache.Get(playlistID); ok {
		metrics.CatalogCacheHits.Inc()
		return append([]domain.Track(nil), tracks...), nil
	}
	metrics.CatalogCacheMisses.Inc()

	tracks, err := c.next.GetPlaylistTracks(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	c.cache.Add(playlistID, append([]domain.Track(nil), tracks...))
	return tracks, nil
}
