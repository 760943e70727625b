package testing

import (
	"slices"

	"github.com/imamik/cloudlaunch/internal/config"
)

// ConfigBuilder provides a fluent interface for constructing test configs.
// Each method returns a new builder (immutable) for chaining.
type ConfigBuilder struct {
	cfg config.Config
}

// NewConfigBuilder creates a ConfigBuilder with a valid Hetzner configuration.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: config.Config{
			Provider:   config.ProviderHCloud,
			Cloud:      "Hetzner Cloud",
			NamePrefix: "galaxy",
			Launch: config.LaunchConfig{
				Image:          "img-1",
				Size:           "small",
				Network:        "galaxy-net",
				KeyPair:        "cloudman_key_pair",
				SecurityGroups: []string{"CloudLaunchDefault"},
			},
			HCloud: config.HCloudConfig{Token: "test-token"},
			Server: config.ServerConfig{Listen: config.DefaultListen},
		},
	}
}

// WithProvider sets the backend.
func (b *ConfigBuilder) WithProvider(name string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Provider = name
	return newBuilder
}

// WithCloud sets the spoken cloud name.
func (b *ConfigBuilder) WithCloud(cloud string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Cloud = cloud
	return newBuilder
}

// WithLaunch sets the image and size of the launch template.
func (b *ConfigBuilder) WithLaunch(image, size string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Launch.Image = image
	newBuilder.cfg.Launch.Size = size
	return newBuilder
}

// WithEC2 switches to the EC2 backend in the given region.
func (b *ConfigBuilder) WithEC2(region string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Provider = config.ProviderEC2
	newBuilder.cfg.EC2.Region = region
	return newBuilder
}

// Build returns a copy of the configuration.
func (b *ConfigBuilder) Build() *config.Config {
	cfg := b.clone().cfg
	return &cfg
}

func (b *ConfigBuilder) clone() *ConfigBuilder {
	cfg := b.cfg
	cfg.Launch.SecurityGroups = slices.Clone(b.cfg.Launch.SecurityGroups)
	return &ConfigBuilder{cfg: cfg}
}
