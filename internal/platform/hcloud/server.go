package hcloud

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

// CreateInstance creates a new server with the given specifications.
// It returns as soon as Hetzner accepted the request; the create action keeps
// running in the background and the server reports "initializing" meanwhile.
func (c *RealClient) CreateInstance(ctx context.Context, opts provider.CreateInstanceOpts) (string, error) {
	createOpts, err := c.buildServerCreateOpts(ctx, opts)
	if err != nil {
		return "", err
	}

	result, _, err := c.client.Server.Create(ctx, createOpts)
	if err != nil {
		return "", fmt.Errorf("failed to create server: %w", err)
	}
	if result.Server == nil {
		return "", fmt.Errorf("failed to create server: empty response")
	}

	return strconv.FormatInt(result.Server.ID, 10), nil
}

// GetInstance returns the server with the given ID.
func (c *RealClient) GetInstance(ctx context.Context, id string) (*provider.Instance, error) {
	serverID, err := parseServerID(id)
	if err != nil {
		return nil, err
	}

	server, _, err := c.client.Server.GetByID(ctx, serverID)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("server %d: %w", serverID, provider.ErrInstanceNotFound)
		}
		return nil, fmt.Errorf("failed to get server: %w", err)
	}
	if server == nil {
		return nil, fmt.Errorf("server %d: %w", serverID, provider.ErrInstanceNotFound)
	}

	return instanceFromServer(server), nil
}

// ListInstances returns all servers of the project.
func (c *RealClient) ListInstances(ctx context.Context) ([]*provider.Instance, error) {
	servers, err := c.client.Server.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}

	instances := make([]*provider.Instance, 0, len(servers))
	for _, server := range servers {
		instances = append(instances, instanceFromServer(server))
	}
	return instances, nil
}

// parseServerID converts an instance handle to a Hetzner server ID.
// A handle that is not a server ID cannot name an existing server.
func parseServerID(id string) (int64, error) {
	serverID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid server id %q: %w", id, provider.ErrInstanceNotFound)
	}
	return serverID, nil
}

// instanceFromServer converts a Hetzner server to a provider instance.
func instanceFromServer(server *hcloud.Server) *provider.Instance {
	inst := &provider.Instance{
		ID:      strconv.FormatInt(server.ID, 10),
		Name:    server.Name,
		State:   instanceState(server.Status),
		Created: server.Created,
	}

	if ip := server.PublicNet.IPv4.IP; ip != nil && !ip.IsUnspecified() {
		inst.PublicIPs = append(inst.PublicIPs, ip.String())
	}
	for _, privateNet := range server.PrivateNet {
		if privateNet.IP != nil {
			inst.PrivateIPs = append(inst.PrivateIPs, privateNet.IP.String())
		}
	}

	return inst
}

// instanceState maps a Hetzner server status to a provider state.
func instanceState(status hcloud.ServerStatus) provider.InstanceState {
	switch status {
	case hcloud.ServerStatusInitializing,
		hcloud.ServerStatusStarting,
		hcloud.ServerStatusRebuilding,
		hcloud.ServerStatusMigrating:
		return provider.StatePending
	case hcloud.ServerStatusRunning:
		return provider.StateRunning
	case hcloud.ServerStatusStopping, hcloud.ServerStatusOff:
		return provider.StateStopped
	case hcloud.ServerStatusDeleting:
		return provider.StateTerminated
	default:
		return provider.StateUnknown
	}
}
