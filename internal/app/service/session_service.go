package service

import (
	"context"
	"errors"

	"nerine_frontend/internal/common"
	"nerine_frontend/internal/common/security"
	"nerine_frontend/internal/domain/model"
	"nerine_frontend/internal/platform/backend"
)

type SessionService struct {
	client *backend.Client
}

func NewSessionService(client *backend.Client) *SessionService {
	return &SessionService{client: client}
}

// Session is the resolved acting team for a page load.
type Session struct {
	TeamID  string
	Profile *model.Profile
}

// Resolve turns a stored session token into the acting team's private
// profile. A missing, undecodable or backend-rejected token resolves to no
// session (nil, nil) rather than an error: a stale local cookie must never
// break page bootstrap. Pages re-prompt for authentication when a later
// authenticated call reports invalid_token. Only transport faults return an
// error.
func (s *SessionService) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, nil
	}

	teamID, err := security.TeamIDFromToken(token)
	if err != nil {
		return nil, nil
	}

	profile, err := s.client.Profile(ctx, teamID, token)
	if err != nil {
		var apiErr *common.APIError
		if errors.As(err, &apiErr) {
			return nil, nil
		}
		return nil, err
	}

	return &Session{TeamID: teamID, Profile: profile}, nil
}
