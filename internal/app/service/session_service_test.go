package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"nerine_frontend/internal/platform/backend"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func fakeBackend(t *testing.T, h http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return backend.New(srv.URL)
}

func teamToken(t *testing.T, teamID string) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"team_id": teamID}).
		SignedString([]byte("whatever"))
	require.NoError(t, err)
	return raw
}

func TestResolveNoToken(t *testing.T) {
	s := NewSessionService(fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no backend call expected for an empty token")
	}))

	session, err := s.Resolve(context.Background(), "")
	require.NoError(t, err)
	require.Nil(t, session)
}

func TestResolveMalformedToken(t *testing.T) {
	s := NewSessionService(fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no backend call expected for an undecodable token")
	}))

	// a corrupt local cookie must never break page bootstrap
	session, err := s.Resolve(context.Background(), "garbage.not.jwt")
	require.NoError(t, err)
	require.Nil(t, session)
}

func TestResolveBackendRejectsToken(t *testing.T) {
	s := NewSessionService(fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_token","message":"invalid token"}`))
	}))

	session, err := s.Resolve(context.Background(), teamToken(t, "team-1"))
	require.NoError(t, err)
	require.Nil(t, session)
}

func TestResolveHappyPath(t *testing.T) {
	s := NewSessionService(fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/profile/team-1", r.URL.Path)
		require.Contains(t, r.Header.Get("Cookie"), "token=")
		w.Write([]byte(`{"type":"private","name":"team one","email":"a@b.c","division":null,"score":0,"rank":9,"solves":[]}`))
	}))

	session, err := s.Resolve(context.Background(), teamToken(t, "team-1"))
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Equal(t, "team-1", session.TeamID)
	require.Equal(t, "team one", session.Profile.Name)
}

func TestResolveTransportFaultPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := backend.New(srv.URL)
	srv.Close() // force a connection failure

	s := NewSessionService(client)
	_, err := s.Resolve(context.Background(), teamToken(t, "team-1"))
	require.Error(t, err)
}
