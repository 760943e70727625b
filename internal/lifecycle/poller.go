package lifecycle

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

// Poller advances a Session by one status turn.
type Poller struct {
	provider provider.Provider
	claimer  *Claimer
	logger   logr.Logger
}

// NewPoller creates a Poller backed by p.
func NewPoller(p provider.Provider, opts ...Option) *Poller {
	o := buildOptions(opts)
	return &Poller{
		provider: p,
		claimer:  NewClaimer(p, opts...),
		logger:   o.logger,
	}
}

// Poll fetches the instance state and returns the report for this turn and
// the Session for the next one. The first poll that observes running claims
// a floating IP; later polls never attach. On error the input Session is
// returned unchanged.
func (p *Poller) Poll(ctx context.Context, s Session) (Report, Session, error) {
	if !s.HasInstance() {
		return Report{}, s, ErrNoActiveInstance
	}

	instance, err := p.provider.GetInstance(ctx, s.InstanceID)
	if err != nil {
		if provider.IsNotFound(err) {
			p.logger.Info("Instance no longer exists", "instance", s.InstanceID)
			return Report{}, s, &InstanceNotFoundError{InstanceID: s.InstanceID, Err: err}
		}
		p.logger.Error(err, "Failed to fetch instance", "instance", s.InstanceID)
		return Report{}, s, &ProviderUnavailableError{Op: "get instance", Err: err}
	}

	next := s
	if next.Name == "" {
		next.Name = instance.Name
	}
	changed := instance.State != s.LastKnownState
	if changed {
		p.logger.Info("Instance state changed", "instance", s.InstanceID,
			"from", s.LastKnownState, "to", instance.State)
	}

	var addressUnavailable bool
	if instance.State == provider.StateRunning && next.PublicIP == "" {
		var address string
		if next.AddressClaimAttempted {
			address, err = p.claimer.Recover(ctx, s.InstanceID)
		} else {
			address, err = p.claimer.Claim(ctx, s.InstanceID)
		}
		if err != nil {
			return Report{}, s, err
		}
		next.AddressClaimAttempted = true
		next.PublicIP = address
		addressUnavailable = address == ""
	}

	next.LastKnownState = instance.State
	pollsTotal.WithLabelValues(string(instance.State)).Inc()
	return newReport(next, changed, addressUnavailable), next, nil
}
