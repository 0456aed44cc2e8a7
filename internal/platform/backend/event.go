package backend

import (
	"context"
	"net/http"

	"nerine_frontend/internal/domain/model"
)

// Event fetches the competition metadata driving all time gating. Fetched
// once per page load and treated as read-only.
func (c *Client) Event(ctx context.Context) (*model.Event, error) {
	res, err := c.request(ctx, http.MethodGet, "/event", requestOptions{})
	if err != nil {
		return nil, err
	}
	event, err := decode[model.Event](res)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
