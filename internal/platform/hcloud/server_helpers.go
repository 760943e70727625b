package hcloud

import (
	"context"
	"fmt"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

// buildServerCreateOpts resolves all dependencies and builds server creation options.
func (c *RealClient) buildServerCreateOpts(ctx context.Context, opts provider.CreateInstanceOpts) (hcloud.ServerCreateOpts, error) {
	serverType, err := c.resolveServerType(ctx, opts.Size)
	if err != nil {
		return hcloud.ServerCreateOpts{}, err
	}

	image, err := c.resolveImage(ctx, opts.Image, serverType.Architecture)
	if err != nil {
		return hcloud.ServerCreateOpts{}, err
	}

	sshKeys, err := c.resolveSSHKeys(ctx, opts.KeyPair)
	if err != nil {
		return hcloud.ServerCreateOpts{}, err
	}

	networks, err := c.resolveNetworks(ctx, opts.Network)
	if err != nil {
		return hcloud.ServerCreateOpts{}, err
	}

	firewalls, err := c.resolveFirewalls(ctx, opts.SecurityGroups)
	if err != nil {
		return hcloud.ServerCreateOpts{}, err
	}

	location, err := c.resolveLocation(ctx, opts.Location)
	if err != nil {
		return hcloud.ServerCreateOpts{}, err
	}

	return hcloud.ServerCreateOpts{
		Name:       opts.Name,
		ServerType: serverType,
		Image:      image,
		SSHKeys:    sshKeys,
		Networks:   networks,
		Firewalls:  firewalls,
		Location:   location,
		Labels:     map[string]string{"managed-by": "cloudlaunch"},
	}, nil
}

// resolveServerType resolves a server type name or ID.
func (c *RealClient) resolveServerType(ctx context.Context, size string) (*hcloud.ServerType, error) {
	serverType, _, err := c.client.ServerType.Get(ctx, size)
	if err != nil {
		return nil, fmt.Errorf("failed to get server type: %w", err)
	}
	if serverType == nil {
		return nil, fmt.Errorf("server type not found: %s", size)
	}
	return serverType, nil
}

// resolveImage resolves an image name or ID matching the server architecture.
func (c *RealClient) resolveImage(ctx context.Context, image string, arch hcloud.Architecture) (*hcloud.Image, error) {
	imageObj, _, err := c.client.Image.GetForArchitecture(ctx, image, arch)
	if err != nil {
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	if imageObj == nil {
		return nil, fmt.Errorf("image not found: %s (%s)", image, arch)
	}
	return imageObj, nil
}

// resolveSSHKeys resolves an SSH key name or ID. No key means none is injected.
func (c *RealClient) resolveSSHKeys(ctx context.Context, key string) ([]*hcloud.SSHKey, error) {
	if key == "" {
		return nil, nil
	}

	keyObj, _, err := c.client.SSHKey.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get ssh key %s: %w", key, err)
	}
	if keyObj == nil {
		return nil, fmt.Errorf("ssh key not found: %s", key)
	}
	return []*hcloud.SSHKey{keyObj}, nil
}

// resolveNetworks resolves a network name or ID. Without one the server only
// gets its public interface.
func (c *RealClient) resolveNetworks(ctx context.Context, network string) ([]*hcloud.Network, error) {
	if network == "" {
		return nil, nil
	}

	networkObj, _, err := c.client.Network.Get(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("failed to get network %s: %w", network, err)
	}
	if networkObj == nil {
		return nil, fmt.Errorf("network not found: %s", network)
	}
	return []*hcloud.Network{networkObj}, nil
}

// resolveFirewalls resolves security group names or IDs to Hetzner firewalls.
func (c *RealClient) resolveFirewalls(ctx context.Context, names []string) ([]*hcloud.ServerCreateFirewall, error) {
	firewalls := make([]*hcloud.ServerCreateFirewall, 0, len(names))
	for _, name := range names {
		firewall, _, err := c.client.Firewall.Get(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to get firewall %s: %w", name, err)
		}
		if firewall == nil {
			return nil, fmt.Errorf("firewall not found: %s", name)
		}
		firewalls = append(firewalls, &hcloud.ServerCreateFirewall{Firewall: *firewall})
	}
	return firewalls, nil
}

// resolveLocation resolves a location name to a location object.
func (c *RealClient) resolveLocation(ctx context.Context, location string) (*hcloud.Location, error) {
	if location == "" {
		return nil, nil
	}

	locObj, _, err := c.client.Location.Get(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to get location %s: %w", location, err)
	}
	if locObj == nil {
		return nil, fmt.Errorf("location not found: %s", location)
	}
	return locObj, nil
}
