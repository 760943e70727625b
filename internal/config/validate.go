package config

import (
	"errors"
	"fmt"
	"net"
)

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	switch c.Provider {
	case ProviderHCloud:
		if c.HCloud.Token == "" {
			errs = append(errs, errors.New("hcloud.token is required (or set HCLOUD_TOKEN)"))
		}
	case ProviderEC2:
		errs = append(errs, c.EC2.validate()...)
	case "":
		errs = append(errs, errors.New("provider is required"))
	default:
		errs = append(errs, fmt.Errorf("provider %q is not supported (use %s or %s)", c.Provider, ProviderHCloud, ProviderEC2))
	}

	if c.Launch.Image == "" {
		errs = append(errs, errors.New("launch.image is required"))
	}
	if c.Launch.Size == "" {
		errs = append(errs, errors.New("launch.size is required"))
	}
	for i, group := range c.Launch.SecurityGroups {
		if group == "" {
			errs = append(errs, fmt.Errorf("launch.securityGroups[%d] must not be empty", i))
		}
	}

	if c.Server.Listen != "" {
		if _, _, err := net.SplitHostPort(c.Server.Listen); err != nil {
			errs = append(errs, fmt.Errorf("server.listen %q is invalid: %w", c.Server.Listen, err))
		}
	}

	return errors.Join(errs...)
}

func (e EC2Config) validate() []error {
	var errs []error
	if e.Region == "" {
		errs = append(errs, errors.New("ec2.region is required"))
	}
	if (e.AccessKeyID == "") != (e.SecretAccessKey == "") {
		errs = append(errs, errors.New("ec2.accessKeyId and ec2.secretAccessKey must be set together"))
	}
	return errs
}
