package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"nerine_frontend/internal/common"
	"nerine_frontend/internal/domain/model"
)

// Profile fetches a team's scoreboard view. Anonymous callers (empty token)
// get the public view; the owning team's token upgrades it to private.
func (c *Client) Profile(ctx context.Context, id, token string) (*model.Profile, error) {
	res, err := c.request(ctx, http.MethodGet, "/profile/"+id, requestOptions{
		headers: sessionCookie(token),
	})
	if err != nil {
		return nil, err
	}
	profile, err := decode[model.Profile](res)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ProfileUpdate is the two-way result of UpdateProfile: either the change
// applied immediately, or the email part is parked behind a verification
// mail. Exactly one field is set.
type ProfileUpdate struct {
	Team         *model.Team
	PendingEmail *model.EmailChangeNotice
}

// UpdateProfile submits new profile data for the authenticated team. When
// the email address changed the backend answers with a notice instead of the
// team row; the two are told apart by the presence of the id field.
func (c *Client) UpdateProfile(ctx context.Context, token, email, name string, division *string) (*ProfileUpdate, error) {
	res, err := c.request(ctx, http.MethodPost, "/profile/update", requestOptions{
		body: map[string]any{
			"email":    email,
			"name":     name,
			"division": division,
		},
		headers: sessionCookie(token),
	})
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if common.IsErrorPayload(body) {
		apiErr := &common.APIError{}
		if err := json.Unmarshal(body, apiErr); err != nil {
			return nil, fmt.Errorf("decode error response: %w", err)
		}
		return nil, apiErr
	}

	var probe struct {
		ID *string `json:"id"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if probe.ID != nil {
		var team model.Team
		if err := json.Unmarshal(body, &team); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return &ProfileUpdate{Team: &team}, nil
	}

	var notice model.EmailChangeNotice
	if err := json.Unmarshal(body, &notice); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &ProfileUpdate{PendingEmail: &notice}, nil
}

// VerifyEmailUpdate confirms a pending email change.
func (c *Client) VerifyEmailUpdate(ctx context.Context, token string) (*model.Team, error) {
	res, err := c.request(ctx, http.MethodPost, "/profile/verify_email_update", requestOptions{
		body: map[string]string{"token": token},
	})
	if err != nil {
		return nil, err
	}
	team, err := decode[model.Team](res)
	if err != nil {
		return nil, err
	}
	return &team, nil
}
