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

// Challenges lists the event's challenges, with this team's solved_at filled
// in when a token is supplied.
func (c *Client) Challenges(ctx context.Context, token string) ([]model.Challenge, error) {
	res, err := c.request(ctx, http.MethodGet, "/challs", requestOptions{
		headers: sessionCookie(token),
	})
	if err != nil {
		return nil, err
	}
	return decode[[]model.Challenge](res)
}

// ChallengeSolves lists which teams solved one challenge, newest last.
func (c *Client) ChallengeSolves(ctx context.Context, id, token string) ([]model.ChallengeSolve, error) {
	res, err := c.request(ctx, http.MethodGet, "/challs/solves/"+id, requestOptions{
		headers: sessionCookie(token),
	})
	if err != nil {
		return nil, err
	}
	return decode[[]model.ChallengeSolve](res)
}

// SubmitFlag turns in a flag. Unlike every other operation this one
// discriminates on the transport status: HTTP 200 means accepted regardless
// of the body, because the accepted case carries no payload to discriminate
// on. Any other status is decoded as a backend error (wrong_flag and
// event_ended being the usual ones).
func (c *Client) SubmitFlag(ctx context.Context, challengeID, flag, token string) error {
	res, err := c.request(ctx, http.MethodPost, "/challs/submit", requestOptions{
		body: map[string]string{
			"challenge_id": challengeID,
			"flag":         flag,
		},
		headers: sessionCookie(token),
	})
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if common.IsErrorPayload(body) {
		apiErr := &common.APIError{}
		if err := json.Unmarshal(body, apiErr); err == nil {
			return apiErr
		}
	}
	return fmt.Errorf("flag submission failed with status %d", res.StatusCode)
}
