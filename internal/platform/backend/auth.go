package backend

import (
	"context"
	"io"
	"net/http"

	"nerine_frontend/internal/domain/model"
)

// TeamID is the minimal acknowledgement the auth endpoints return.
type TeamID struct {
	ID string `json:"id"`
}

// Token wraps a freshly issued session token.
type Token struct {
	Token string `json:"token"`
}

func (c *Client) Register(ctx context.Context, email, name string) (*model.Team, error) {
	res, err := c.request(ctx, http.MethodPost, "/auth/register", requestOptions{
		body: map[string]string{"email": email, "name": name},
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

func (c *Client) Login(ctx context.Context, token string) (*TeamID, error) {
	res, err := c.request(ctx, http.MethodPost, "/auth/login", requestOptions{
		body: map[string]string{"token": token},
	})
	if err != nil {
		return nil, err
	}
	id, err := decode[TeamID](res)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (c *Client) VerifyEmail(ctx context.Context, token string) (*TeamID, error) {
	res, err := c.request(ctx, http.MethodPost, "/auth/verify_email", requestOptions{
		body: map[string]string{"token": token},
	})
	if err != nil {
		return nil, err
	}
	id, err := decode[TeamID](res)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// VerificationDetails looks up what a pending verification token is for.
func (c *Client) VerificationDetails(ctx context.Context, token string) (*model.VerificationDetails, error) {
	res, err := c.request(ctx, http.MethodPost, "/auth/verification_details", requestOptions{
		body: map[string]string{"token": token},
	})
	if err != nil {
		return nil, err
	}
	details, err := decode[model.VerificationDetails](res)
	if err != nil {
		return nil, err
	}
	return &details, nil
}

// ResendToken asks for a fresh login token mail. Fire and forget: the
// response body is intentionally ignored, only transport faults surface.
func (c *Client) ResendToken(ctx context.Context, email string) error {
	res, err := c.request(ctx, http.MethodPost, "/auth/resend_token", requestOptions{
		body: map[string]string{"email": email},
	})
	if err != nil {
		return err
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)
	return nil
}

// GenToken mints a fresh session token for the authenticated team.
func (c *Client) GenToken(ctx context.Context, token string) (*Token, error) {
	res, err := c.request(ctx, http.MethodGet, "/auth/gen_token", requestOptions{
		headers: sessionCookie(token),
	})
	if err != nil {
		return nil, err
	}
	generated, err := decode[Token](res)
	if err != nil {
		return nil, err
	}
	return &generated, nil
}
