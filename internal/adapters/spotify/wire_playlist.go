package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
)

const playlistPageSize = 100

// GetPlaylistTracks fetches the tracks of a playlist, following the `next`
// link up to the configured page limit.
func (c *Client) GetPlaylistTracks(ctx context.Context, playlistID string) ([]domain.Track, error) {
	if c.initErr != nil {
		return nil, c.initErr
	}

	query := url.Values{}
	query.Set("limit", fmt.Sprint(playlistPageSize))
	next := fmt.Sprintf("%s/playlists/%s/tracks?%s", c.baseURL, url.PathEscape(playlistID), query.Encode())

	var tracks []domain.Track
	for page := 0; next != "" && page < c.pageLimit; page++ {
		p, err := c.fetchPlaylistPage(ctx, next)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, mapPlaylistItems(p.Items)...)

		next = ""
		if p.Next != nil {
			next = *p.Next
		}
	}
	if next != "" {
		c.logger.Warn("playlist truncated at page limit", "playlist_id", playlistID, "pages", c.pageLimit, "tracks", len(tracks))
	}

	c.logger.Debug("playlist resolved", "playlist_id", playlistID, "tracks", len(tracks))
	if tracks == nil {
		tracks = []domain.Track{}
	}
	return tracks, nil
}

func (c *Client) fetchPlaylistPage(ctx context.Context, pageURL string) (playlistPage, error) {
	resp, err := c.get(ctx, pageURL)
	if err != nil {
		return playlistPage{}, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return playlistPage{}, &domain.UpstreamFetchError{Status: resp.StatusCode, Body: string(body)}
	}

	var page playlistPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return playlistPage{}, &domain.UpstreamFetchError{Err: fmt.Errorf("spotify adapter: decode playlist: %w", err)}
	}
	return page, nil
}
