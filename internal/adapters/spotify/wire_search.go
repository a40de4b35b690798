package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
	"github.com/ewilliams-labs/deepcuts/internal/core/ports"
)

const (
	searchMatchThreshold = 0.8
	searchResultLimit    = 5
)

// MatchTrack searches the catalog for a title/artist pair and returns the best
// candidate scoring at or above the confidence threshold.
func (c *Client) MatchTrack(ctx context.Context, title string, artist string) (domain.CatalogMatch, error) {
	if c.initErr != nil {
		return domain.CatalogMatch{}, c.initErr
	}

	items, err := c.searchTracks(ctx, title, artist)
	if err != nil {
		return domain.CatalogMatch{}, err
	}

	bestScore := 0.0
	bestIndex := -1
	for i, candidate := range items {
		if i == searchResultLimit {
			break
		}
		score := ScoreResult(artist, title, joinArtistNames(candidate), candidate.Name)
		c.logger.Debug("search candidate", "artist", joinArtistNames(candidate), "title", candidate.Name, "score", score)
		if score >= searchMatchThreshold && score > bestScore {
			bestScore = score
			bestIndex = i
		}
	}

	if bestIndex == -1 {
		return domain.CatalogMatch{}, fmt.Errorf("spotify adapter: %w", ports.NoConfidentMatchError{Title: title, Artist: artist})
	}

	return mapMatch(items[bestIndex], bestScore), nil
}

func (c *Client) searchTracks(ctx context.Context, title string, artist string) ([]spotifyTrack, error) {
	searchURL, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: invalid search url: %w", err)
	}

	query := searchURL.Query()
	query.Set("q", fmt.Sprintf("track:%s artist:%s", fallbackIfEmpty(Normalize(title), title), fallbackIfEmpty(Normalize(artist), artist)))
	query.Set("type", "track")
	query.Set("limit", fmt.Sprint(searchResultLimit))
	searchURL.RawQuery = query.Encode()

	resp, err := c.get(ctx, searchURL.String())
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return nil, &domain.UpstreamFetchError{Status: resp.StatusCode, Body: string(body)}
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &domain.UpstreamFetchError{Err: fmt.Errorf("spotify adapter: search decode error: %w", err)}
	}

	return body.Tracks.Items, nil
}
