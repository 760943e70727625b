package lifecycle

import (
	"fmt"
	"strings"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

// Report describes the outcome of one turn for the conversational layer.
type Report struct {
	Message    string
	InstanceID string
	Name       string
	State      provider.InstanceState
	// Changed is set when the state differs from the previous turn.
	Changed bool
	// Endpoint is the reachable URL once a floating IP is attached.
	Endpoint string
	// AddressUnavailable is set when the instance runs but holds no floating IP.
	AddressUnavailable bool
}

// Done reports whether the caller should stop polling.
func (r Report) Done() bool {
	switch r.State {
	case provider.StateRunning:
		return r.Endpoint != ""
	case provider.StateError, provider.StateTerminated:
		return true
	default:
		return false
	}
}

func newReport(s Session, changed, addressUnavailable bool) Report {
	r := Report{
		InstanceID:         s.InstanceID,
		Name:               s.Name,
		State:              s.LastKnownState,
		Changed:            changed,
		Endpoint:           s.Endpoint(),
		AddressUnavailable: addressUnavailable,
	}
	r.Message = r.message()
	return r
}

func (r Report) message() string {
	var b strings.Builder
	if r.Changed {
		fmt.Fprintf(&b, "New instance status is %s.", r.State)
	} else {
		fmt.Fprintf(&b, "Instance status is %s.", r.State)
	}

	switch r.State {
	case provider.StatePending:
		b.WriteString(" The instance is starting.")
	case provider.StateRunning:
		switch {
		case r.Endpoint != "":
			fmt.Fprintf(&b, " Access your instance at %s.", r.Endpoint)
		case r.AddressUnavailable:
			b.WriteString(" No public address is currently available.")
		}
	case provider.StateStopped:
		b.WriteString(" The instance is powered off.")
	case provider.StateError:
		b.WriteString(" The instance failed to start.")
	case provider.StateTerminated:
		b.WriteString(" The instance has been terminated.")
	}
	return b.String()
}
