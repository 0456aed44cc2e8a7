package backend

import (
	"context"
	"net/http"

	"nerine_frontend/internal/domain/model"
)

// Leaderboard fetches the standings, optionally scoped to one division. The
// endpoint is public; no credential is attached.
func (c *Client) Leaderboard(ctx context.Context, division string) ([]model.LeaderboardEntry, error) {
	path := "/leaderboard"
	if division != "" {
		path += "/" + division
	}
	res, err := c.request(ctx, http.MethodGet, path, requestOptions{})
	if err != nil {
		return nil, err
	}
	return decode[[]model.LeaderboardEntry](res)
}
