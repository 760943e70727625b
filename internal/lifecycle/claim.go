package lifecycle

import (
	"context"
	"errors"
	"sync"

	"github.com/go-logr/logr"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

// claimMu serializes select-and-attach across all sessions in the process.
var claimMu sync.Mutex

// Claimer attaches a free floating IP from the provider pool to an instance.
type Claimer struct {
	provider provider.Provider
	logger   logr.Logger
}

// NewClaimer creates a Claimer backed by p.
func NewClaimer(p provider.Provider, opts ...Option) *Claimer {
	o := buildOptions(opts)
	return &Claimer{provider: p, logger: o.logger}
}

// Claim returns the floating IP attached to the instance, attaching the first
// free one if the instance holds none. It returns "" when the pool has no free
// address. An address already held by the instance is returned without a new
// attach, which makes a repeated claim after a lost session update safe.
func (c *Claimer) Claim(ctx context.Context, instanceID string) (string, error) {
	claimMu.Lock()
	defer claimMu.Unlock()

	pool, err := c.provider.ListFloatingIPs(ctx)
	if err != nil {
		addressClaimsTotal.WithLabelValues(claimFailed).Inc()
		return "", &ProviderUnavailableError{Op: "list floating ips", Err: err}
	}

	if address := attachedTo(pool, instanceID); address != "" {
		c.logger.Info("Recovered floating IP already attached", "instance", instanceID, "address", address)
		addressClaimsTotal.WithLabelValues(claimRecovered).Inc()
		return address, nil
	}

	lost := make(map[string]bool)
	for range pool {
		candidate := firstFree(pool, lost)
		if candidate == "" {
			break
		}

		err := c.attach(ctx, instanceID, candidate)
		if err == nil {
			c.logger.Info("Attached floating IP", "instance", instanceID, "address", candidate)
			addressClaimsTotal.WithLabelValues(claimAttached).Inc()
			return candidate, nil
		}

		var claimed *IPAlreadyClaimedError
		if !errors.As(err, &claimed) {
			addressClaimsTotal.WithLabelValues(claimFailed).Inc()
			return "", err
		}
		c.logger.V(1).Info("Floating IP claimed by another session, selecting next",
			"instance", instanceID, "address", candidate)
		addressClaimsTotal.WithLabelValues(claimLost).Inc()
		lost[candidate] = true
	}

	c.logger.Info("No free floating IP available", "instance", instanceID)
	addressClaimsTotal.WithLabelValues(claimUnavailable).Inc()
	return "", nil
}

// Recover returns the floating IP attached to the instance without attaching
// anything, or "" when it holds none.
func (c *Claimer) Recover(ctx context.Context, instanceID string) (string, error) {
	pool, err := c.provider.ListFloatingIPs(ctx)
	if err != nil {
		return "", &ProviderUnavailableError{Op: "list floating ips", Err: err}
	}
	address := attachedTo(pool, instanceID)
	if address != "" {
		addressClaimsTotal.WithLabelValues(claimRecovered).Inc()
	}
	return address, nil
}

func (c *Claimer) attach(ctx context.Context, instanceID, address string) error {
	err := c.provider.AttachFloatingIP(ctx, instanceID, address)
	switch {
	case err == nil:
		return nil
	case provider.IsClaimed(err), errors.Is(err, provider.ErrAddressNotFound):
		// An address released from the pool counts as lost.
		return &IPAlreadyClaimedError{Address: address, Err: err}
	case provider.IsNotFound(err):
		return &InstanceNotFoundError{InstanceID: instanceID, Err: err}
	default:
		return &ProviderUnavailableError{Op: "attach floating ip", Err: err}
	}
}

func attachedTo(pool []provider.FloatingIP, instanceID string) string {
	if instanceID == "" {
		return ""
	}
	for _, ip := range pool {
		if ip.InstanceID == instanceID {
			return ip.Address
		}
	}
	return ""
}

func firstFree(pool []provider.FloatingIP, skip map[string]bool) string {
	for _, ip := range pool {
		if !ip.InUse && !skip[ip.Address] {
			return ip.Address
		}
	}
	return ""
}
