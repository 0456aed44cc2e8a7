package security

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestTeamIDFromToken(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"team_id": "team-42", "exp": 4102444800})

	id, err := TeamIDFromToken(raw)
	require.NoError(t, err)
	require.Equal(t, "team-42", id)
}

func TestTeamIDFromTokenIgnoresSignature(t *testing.T) {
	// decoding is optimistic routing only; a token signed with an unknown
	// key still yields its claim
	raw := signedToken(t, jwt.MapClaims{"team_id": "team-7"})

	id, err := TeamIDFromToken(raw)
	require.NoError(t, err)
	require.Equal(t, "team-7", id)
}

func TestTeamIDFromTokenMalformed(t *testing.T) {
	_, err := TeamIDFromToken("not.a.jwt")
	require.Error(t, err)

	_, err = TeamIDFromToken("")
	require.Error(t, err)
}

func TestTeamIDFromTokenMissingClaim(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"sub": "whatever"})

	_, err := TeamIDFromToken(raw)
	require.ErrorIs(t, err, ErrNoTeamClaim)
}
