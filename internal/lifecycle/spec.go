package lifecycle

import (
	"errors"
	"slices"
	"time"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
	"github.com/imamik/cloudlaunch/internal/util/naming"
)

// LaunchTemplate holds the configured launch parameters shared by every launch.
type LaunchTemplate struct {
	Image          string
	Size           string
	Network        string
	KeyPair        string
	SecurityGroups []string
	Location       string
	// NamePrefix is prepended to the generated display name.
	NamePrefix string
}

// LaunchSpec describes one launch. Build it with NewLaunchSpec and do not
// modify it afterwards.
type LaunchSpec struct {
	Name           string
	Image          string
	Size           string
	Network        string
	KeyPair        string
	SecurityGroups []string
	Location       string
}

// NewLaunchSpec derives a LaunchSpec from the template with a display name
// generated from now.
func NewLaunchSpec(tmpl LaunchTemplate, now time.Time) LaunchSpec {
	return LaunchSpec{
		Name:           naming.Instance(tmpl.NamePrefix, now),
		Image:          tmpl.Image,
		Size:           tmpl.Size,
		Network:        tmpl.Network,
		KeyPair:        tmpl.KeyPair,
		SecurityGroups: slices.Clone(tmpl.SecurityGroups),
		Location:       tmpl.Location,
	}
}

// Validate checks the fields every backend requires.
// Whether identifiers exist is left to the provider.
func (s LaunchSpec) Validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if s.Image == "" {
		errs = append(errs, errors.New("image is required"))
	}
	if s.Size == "" {
		errs = append(errs, errors.New("size is required"))
	}
	for _, group := range s.SecurityGroups {
		if group == "" {
			errs = append(errs, errors.New("security group identifiers must not be empty"))
			break
		}
	}
	return errors.Join(errs...)
}

func (s LaunchSpec) createOpts() provider.CreateInstanceOpts {
	return provider.CreateInstanceOpts{
		Name:           s.Name,
		Image:          s.Image,
		Size:           s.Size,
		Network:        s.Network,
		KeyPair:        s.KeyPair,
		SecurityGroups: slices.Clone(s.SecurityGroups),
		Location:       s.Location,
	}
}
