package lifecycle

import (
	"fmt"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

// Session is the lifecycle state carried between turns by the caller.
// The JSON form is what the conversational layer stores as session attributes.
type Session struct {
	// InstanceID is the provider handle returned at launch.
	InstanceID string `json:"instance_id,omitempty"`
	// Name is the display name the instance was launched with.
	Name string `json:"name,omitempty"`
	// LastKnownState is empty until the first poll.
	LastKnownState provider.InstanceState `json:"status,omitempty"`
	// PublicIP is the floating IP attached to the instance. Once set it is
	// never cleared or replaced within the session.
	PublicIP string `json:"public_ip,omitempty"`
	// AddressClaimAttempted records that the running edge has been consumed.
	AddressClaimAttempted bool `json:"address_claimed,omitempty"`
}

// HasInstance reports whether a launch has been recorded.
func (s Session) HasInstance() bool {
	return s.InstanceID != ""
}

// Ready reports whether the instance is running with an attached address.
func (s Session) Ready() bool {
	return s.LastKnownState == provider.StateRunning && s.PublicIP != ""
}

// Endpoint returns the URL the instance is reachable at, or "" when no
// address has been attached.
func (s Session) Endpoint() string {
	return endpointFor(s.PublicIP)
}

func endpointFor(address string) string {
	if address == "" {
		return ""
	}
	return fmt.Sprintf("http://%s", address)
}
