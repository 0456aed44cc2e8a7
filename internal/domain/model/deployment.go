package model

import (
	"encoding/json"
	"fmt"
	"time"
)

type DeploymentState string

const (
	DeploymentCreated   DeploymentState = "created"
	DeploymentExpired   DeploymentState = "expired"
	DeploymentDestroyed DeploymentState = "destroyed"
)

// ChallengeDeployment is one team's ephemeral instance of an instanced
// challenge. The backend reclaims instances after a TTL (expired_at) and
// tears them down on explicit destroy or post-expiry cleanup (destroyed_at).
type ChallengeDeployment struct {
	ID       string `json:"id"`
	Deployed bool   `json:"deployed"`
	// Data maps container name to that container's exposed ports.
	Data        map[string]DeploymentData `json:"data"`
	CreatedAt   UTCTime                   `json:"created_at"`
	ExpiredAt   *UTCTime                  `json:"expired_at"`
	DestroyedAt *UTCTime                  `json:"destroyed_at"`
}

type DeploymentData struct {
	Ports PortMap `json:"ports"`
}

// PortMap maps a container's exposed port number to how that port is reached
// from outside. The backend decides how many ports a challenge exposes;
// never assume a fixed set.
type PortMap map[uint16]HostMapping

// HostMapping is the routing method for one exposed port. Exactly two
// variants exist: TCPMapping and HTTPMapping. Consumers must handle both;
// there is no catch-all.
type HostMapping interface {
	hostMapping()
}

const (
	MappingTCP  = "tcp"
	MappingHTTP = "http"
)

// TCPMapping is a direct port on a shared base host.
type TCPMapping struct {
	Port uint16 `json:"port"`
	// Base is the shared host. Some backend versions omit it for tcp
	// mappings; preserve whatever the wire carries.
	Base string `json:"base,omitempty"`
}

// HTTPMapping is routed through a subdomain of a shared base domain.
type HTTPMapping struct {
	Subdomain string `json:"subdomain"`
	Base      string `json:"base"`
}

func (TCPMapping) hostMapping()  {}
func (HTTPMapping) hostMapping() {}

func (m TCPMapping) MarshalJSON() ([]byte, error) {
	type alias TCPMapping
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{MappingTCP, alias(m)})
}

func (m HTTPMapping) MarshalJSON() ([]byte, error) {
	type alias HTTPMapping
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{MappingHTTP, alias(m)})
}

func (p *PortMap) UnmarshalJSON(b []byte) error {
	var raw map[uint16]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(PortMap, len(raw))
	for port, entry := range raw {
		var tag struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(entry, &tag); err != nil {
			return err
		}
		switch tag.Type {
		case MappingTCP:
			var m TCPMapping
			if err := json.Unmarshal(entry, &m); err != nil {
				return err
			}
			out[port] = m
		case MappingHTTP:
			var m HTTPMapping
			if err := json.Unmarshal(entry, &m); err != nil {
				return err
			}
			out[port] = m
		default:
			return fmt.Errorf("unknown host mapping type %q", tag.Type)
		}
	}
	*p = out
	return nil
}

func (d *ChallengeDeployment) State() DeploymentState {
	switch {
	case d.DestroyedAt != nil:
		return DeploymentDestroyed
	case d.ExpiredAt != nil:
		return DeploymentExpired
	default:
		return DeploymentCreated
	}
}

// Reachable reports whether the port mappings may still be consumed. A set
// destroyed_at always wins over the stored deployed flag.
func (d *ChallengeDeployment) Reachable() bool {
	return d.DestroyedAt == nil && d.Deployed
}

// Active reports whether a poller should keep watching this deployment.
func (d *ChallengeDeployment) Active() bool {
	return d.Deployed && d.ExpiredAt == nil && d.DestroyedAt == nil
}

// MarkDestroyed stamps a cached deployment after a successful destroy call.
// Destroy is terminal: the instance is gone even while the cached deployed
// flag still reads true.
func (d *ChallengeDeployment) MarkDestroyed(at time.Time) {
	if d.DestroyedAt == nil {
		t := NewUTCTime(at)
		d.DestroyedAt = &t
	}
}
