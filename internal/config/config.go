package config

import "github.com/imamik/cloudlaunch/internal/util/naming"

// Supported provider backends.
const (
	ProviderHCloud = "hcloud"
	ProviderEC2    = "ec2"
)

// DefaultListen is the skill server address used when none is configured.
const DefaultListen = ":8080"

// Config is the root configuration.
type Config struct {
	// Provider selects the backend: "hcloud" or "ec2".
	Provider string `yaml:"provider"`

	// Cloud is the cloud name spoken back to the user.
	Cloud string `yaml:"cloud,omitempty"`

	// NamePrefix is prepended to generated instance names.
	NamePrefix string `yaml:"namePrefix,omitempty"`

	Launch LaunchConfig `yaml:"launch"`
	HCloud HCloudConfig `yaml:"hcloud,omitempty"`
	EC2    EC2Config    `yaml:"ec2,omitempty"`
	Server ServerConfig `yaml:"server,omitempty"`
}

// LaunchConfig is the template every launch is built from.
// Identifiers are passed to the backend as-is: names or IDs on Hetzner,
// AMI, subnet and security group IDs on EC2.
type LaunchConfig struct {
	Image          string   `yaml:"image"`
	Size           string   `yaml:"size"`
	Network        string   `yaml:"network,omitempty"`
	KeyPair        string   `yaml:"keyPair,omitempty"`
	SecurityGroups []string `yaml:"securityGroups,omitempty"`
	Location       string   `yaml:"location,omitempty"`
}

// HCloudConfig holds Hetzner Cloud credentials.
type HCloudConfig struct {
	Token string `yaml:"token,omitempty"`
}

// EC2Config holds AWS settings. Without static keys the default AWS
// credential chain is used.
type EC2Config struct {
	Region          string `yaml:"region,omitempty"`
	AccessKeyID     string `yaml:"accessKeyId,omitempty"`
	SecretAccessKey string `yaml:"secretAccessKey,omitempty"`
	// Endpoint overrides the EC2 endpoint, e.g. for LocalStack.
	Endpoint string `yaml:"endpoint,omitempty"`
}

// ServerConfig configures the skill HTTP server.
type ServerConfig struct {
	Listen string `yaml:"listen,omitempty"`
}

// ApplyDefaults fills unset optional fields.
func (c *Config) ApplyDefaults() {
	if c.NamePrefix == "" {
		c.NamePrefix = naming.DefaultPrefix
	}
	if c.Server.Listen == "" {
		c.Server.Listen = DefaultListen
	}
	if c.Cloud == "" {
		switch c.Provider {
		case ProviderHCloud:
			c.Cloud = "Hetzner Cloud"
		case ProviderEC2:
			c.Cloud = "AWS"
		}
	}
}
