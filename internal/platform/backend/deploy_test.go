package backend

import (
	"context"
	"io"
	"net/http"
	"testing"

	"nerine_frontend/internal/common"
	"nerine_frontend/internal/domain/model"

	"github.com/stretchr/testify/require"
)

const deploymentBody = `{
	"id": "dep-1",
	"deployed": true,
	"data": {"main": {"ports": {
		"1337": {"type": "tcp", "port": 31337, "base": "chal.nerine.localhost"},
		"80": {"type": "http", "subdomain": "abc123", "base": "nerine.localhost"}
	}}},
	"created_at": "2024-01-01T00:00:00",
	"expired_at": null,
	"destroyed_at": null
}`

func TestDeployChallenge(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/challs/deploy/new/c1", r.URL.Path)
		require.Equal(t, "token=tok", r.Header.Get("Cookie"))
		body, _ := io.ReadAll(r.Body)
		require.JSONEq(t, `{}`, string(body), "deploy sends an empty JSON body")
		w.Write([]byte(deploymentBody))
	})

	d, err := c.DeployChallenge(context.Background(), "c1", "tok")
	require.NoError(t, err)
	require.Equal(t, "dep-1", d.ID)
	require.Equal(t, model.DeploymentCreated, d.State())
	require.True(t, d.Reachable())
	require.Len(t, d.Data["main"].Ports, 2)
}

func TestDeployChallengeDeployError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"deploy_error","message":"out of capacity"}`))
	})

	_, err := c.DeployChallenge(context.Background(), "c1", "tok")
	var apiErr *common.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, common.ErrDeploy, apiErr.Kind)
}

func TestDestroyChallenge(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/challs/deploy/destroy/c1", r.URL.Path)
		w.Write([]byte(`"ok"`))
	})

	require.NoError(t, c.DestroyChallenge(context.Background(), "c1", "tok"))
}

func TestDestroyChallengeError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not_found","message":"challenge not found"}`))
	})

	err := c.DestroyChallenge(context.Background(), "gone", "tok")
	var apiErr *common.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, common.ErrNotFound, apiErr.Kind)
}

func TestGetChallengeDeployment(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/challs/deploy/get/dep-1", r.URL.Path)
		w.Write([]byte(deploymentBody))
	})

	d, err := c.GetChallengeDeployment(context.Background(), "dep-1", "tok")
	require.NoError(t, err)
	require.True(t, d.Active())
}
