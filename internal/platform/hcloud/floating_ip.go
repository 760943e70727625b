package hcloud

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

// ListFloatingIPs returns the project's IPv4 floating IPs in API order.
// IPv6 floating IPs are whole networks and are not offered as endpoints.
func (c *RealClient) ListFloatingIPs(ctx context.Context) ([]provider.FloatingIP, error) {
	fips, err := c.client.FloatingIP.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list floating ips: %w", err)
	}

	pool := make([]provider.FloatingIP, 0, len(fips))
	for _, fip := range fips {
		if fip.Type != hcloud.FloatingIPTypeIPv4 {
			continue
		}
		pool = append(pool, floatingIPFromHCloud(fip))
	}
	return pool, nil
}

// AttachFloatingIP assigns the floating IP with the given address to a server.
func (c *RealClient) AttachFloatingIP(ctx context.Context, id, address string) error {
	serverID, err := parseServerID(id)
	if err != nil {
		return err
	}

	fip, err := c.findFloatingIP(ctx, address)
	if err != nil {
		return err
	}

	if fip.Server != nil {
		if fip.Server.ID == serverID {
			return nil
		}
		return fmt.Errorf("floating ip %s is assigned to server %d: %w", address, fip.Server.ID, provider.ErrAddressClaimed)
	}

	action, _, err := c.client.FloatingIP.Assign(ctx, fip, &hcloud.Server{ID: serverID})
	if err != nil {
		return c.assignError(ctx, serverID, address, err)
	}

	if err := c.client.Action.WaitFor(ctx, action); err != nil {
		return fmt.Errorf("failed to wait for floating ip assignment: %w", err)
	}
	return nil
}

// assignError maps a failed assignment to the provider sentinels. A not_found
// names either the server or the floating IP, so the server is looked up
// again and only reported missing when it is really gone.
func (c *RealClient) assignError(ctx context.Context, serverID int64, address string, err error) error {
	code := errorCode(err)
	switch {
	case heldByOtherAction(code):
		return fmt.Errorf("failed to assign floating ip %s: %w: %w", address, provider.ErrAddressClaimed, err)
	case code != hcloud.ErrorCodeNotFound:
		return fmt.Errorf("failed to assign floating ip %s: %w", address, err)
	}

	server, _, getErr := c.client.Server.GetByID(ctx, serverID)
	switch {
	case getErr != nil && !IsNotFound(getErr):
		return fmt.Errorf("failed to assign floating ip %s: %w", address, errors.Join(err, getErr))
	case server == nil:
		return fmt.Errorf("failed to assign floating ip %s: %w: %w", address, provider.ErrInstanceNotFound, err)
	default:
		return fmt.Errorf("failed to assign floating ip %s: %w: %w", address, provider.ErrAddressNotFound, err)
	}
}

// findFloatingIP returns the pool entry with the given address.
func (c *RealClient) findFloatingIP(ctx context.Context, address string) (*hcloud.FloatingIP, error) {
	fips, err := c.client.FloatingIP.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list floating ips: %w", err)
	}
	for _, fip := range fips {
		if fip.IP != nil && fip.IP.String() == address {
			return fip, nil
		}
	}
	return nil, fmt.Errorf("floating ip %s: %w", address, provider.ErrAddressNotFound)
}

// floatingIPFromHCloud converts a Hetzner floating IP to a pool entry.
func floatingIPFromHCloud(fip *hcloud.FloatingIP) provider.FloatingIP {
	entry := provider.FloatingIP{InUse: fip.Server != nil}
	if fip.IP != nil {
		entry.Address = fip.IP.String()
	}
	if fip.Server != nil {
		entry.InstanceID = strconv.FormatInt(fip.Server.ID, 10)
	}
	return entry
}
