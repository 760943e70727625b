package hcloud

import (
	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

// BackendName identifies this backend in configuration and metrics.
const BackendName = "hcloud"

// RealClient implements provider.Provider using the Hetzner Cloud API.
type RealClient struct {
	client *hcloud.Client
}

var _ provider.Provider = (*RealClient)(nil)

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithHCloudClient sets a custom hcloud client (useful for testing).
func WithHCloudClient(hc *hcloud.Client) ClientOption {
	return func(c *RealClient) {
		c.client = hc
	}
}

// NewRealClient creates a new RealClient with optional configuration.
func NewRealClient(token string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		client: hcloud.NewClient(
			hcloud.WithToken(token),
			hcloud.WithApplication("cloudlaunch", ""),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HCloudClient returns the underlying hcloud.Client for advanced operations.
func (c *RealClient) HCloudClient() *hcloud.Client {
	return c.client
}
