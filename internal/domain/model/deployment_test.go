package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const deploymentJSON = `{
	"id": "dep-1",
	"deployed": true,
	"data": {
		"main": {
			"ports": {
				"1337": {"type": "tcp", "port": 31337, "base": "chal.nerine.localhost"},
				"80": {"type": "http", "subdomain": "abc123", "base": "nerine.localhost"}
			}
		}
	},
	"created_at": "2024-01-01T00:00:00",
	"expired_at": null,
	"destroyed_at": null
}`

func TestChallengeDeploymentUnmarshal(t *testing.T) {
	var d ChallengeDeployment
	require.NoError(t, json.Unmarshal([]byte(deploymentJSON), &d))

	require.Equal(t, "dep-1", d.ID)
	require.True(t, d.Deployed)
	require.Nil(t, d.ExpiredAt)
	require.Nil(t, d.DestroyedAt)

	ports := d.Data["main"].Ports
	require.Len(t, ports, 2)

	tcp, ok := ports[1337].(TCPMapping)
	require.True(t, ok, "port 1337 should be a tcp mapping")
	require.Equal(t, uint16(31337), tcp.Port)
	require.Equal(t, "chal.nerine.localhost", tcp.Base)

	web, ok := ports[80].(HTTPMapping)
	require.True(t, ok, "port 80 should be an http mapping")
	require.Equal(t, "abc123", web.Subdomain)
	require.Equal(t, "nerine.localhost", web.Base)
}

func TestTCPMappingWithoutBase(t *testing.T) {
	// some backend versions omit base for tcp; preserve whatever is sent
	var ports PortMap
	require.NoError(t, json.Unmarshal([]byte(`{"9000": {"type": "tcp", "port": 42000}}`), &ports))

	tcp, ok := ports[9000].(TCPMapping)
	require.True(t, ok)
	require.Equal(t, uint16(42000), tcp.Port)
	require.Empty(t, tcp.Base)
}

func TestPortMapRejectsUnknownMappingType(t *testing.T) {
	var ports PortMap
	err := json.Unmarshal([]byte(`{"1": {"type": "udp", "port": 53}}`), &ports)
	require.ErrorContains(t, err, "udp")
}

func TestHostMappingMarshalKeepsTags(t *testing.T) {
	ports := PortMap{
		22: TCPMapping{Port: 2222, Base: "h"},
		80: HTTPMapping{Subdomain: "s", Base: "b"},
	}
	b, err := json.Marshal(ports)
	require.NoError(t, err)

	var back PortMap
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, ports, back)
}

func TestDeploymentStateTransitions(t *testing.T) {
	var d ChallengeDeployment
	require.NoError(t, json.Unmarshal([]byte(deploymentJSON), &d))

	require.Equal(t, DeploymentCreated, d.State())
	require.True(t, d.Reachable())
	require.True(t, d.Active())

	expired := NewUTCTime(time.Now())
	d.ExpiredAt = &expired
	require.Equal(t, DeploymentExpired, d.State())
	require.True(t, d.Reachable(), "an expired instance may still answer queries")
	require.False(t, d.Active())

	d.MarkDestroyed(time.Now())
	require.Equal(t, DeploymentDestroyed, d.State())
	require.False(t, d.Active())
}

func TestDestroyedWinsOverDeployedFlag(t *testing.T) {
	destroyed := NewUTCTime(time.Now())
	d := ChallengeDeployment{
		ID:          "dep-2",
		Deployed:    true, // stale backend state
		DestroyedAt: &destroyed,
	}
	require.False(t, d.Reachable())
	require.Equal(t, DeploymentDestroyed, d.State())
}

func TestMarkDestroyedIsIdempotent(t *testing.T) {
	d := ChallengeDeployment{ID: "dep-3", Deployed: true}
	d.MarkDestroyed(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	first := *d.DestroyedAt
	d.MarkDestroyed(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Equal(t, first, *d.DestroyedAt)
}
