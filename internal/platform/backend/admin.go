package backend

import (
	"context"
	"net/http"

	"nerine_frontend/internal/domain/model"
)

// AdminChallenges lists challenges unredacted (flags included) for the admin
// panel. Admin-scoped: the credential travels in the admin_token cookie, not
// the team session cookie.
func (c *Client) AdminChallenges(ctx context.Context, adminToken string) ([]model.AdminChallenge, error) {
	res, err := c.request(ctx, http.MethodGet, "/admin/challs", requestOptions{
		headers: adminCookie(adminToken),
	})
	if err != nil {
		return nil, err
	}
	return decode[[]model.AdminChallenge](res)
}
