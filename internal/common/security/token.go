package security

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoTeamClaim = errors.New("team_id claim is missing or not a string")

// TeamIDFromToken reads the team_id claim out of a session token WITHOUT
// verifying the signature. The id is only used for optimistic routing (which
// profile to fetch on page load); the backend re-validates the token on every
// authenticated request and reports invalid_token when it is bad. Never use
// this for an authorization decision.
func TeamIDFromToken(raw string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return "", err
	}
	id, ok := claims["team_id"].(string)
	if !ok {
		return "", ErrNoTeamClaim
	}
	return id, nil
}
