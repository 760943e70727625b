package lifecycle

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

// Launcher submits launch requests.
type Launcher struct {
	provider provider.Provider
	logger   logr.Logger
}

// NewLauncher creates a Launcher backed by p.
func NewLauncher(p provider.Provider, opts ...Option) *Launcher {
	o := buildOptions(opts)
	return &Launcher{provider: p, logger: o.logger}
}

// Launch submits exactly one create call and returns a Session holding the
// new handle. It does not wait for the instance to boot. On failure the
// returned Session is empty.
func (l *Launcher) Launch(ctx context.Context, spec LaunchSpec) (Session, error) {
	if err := spec.Validate(); err != nil {
		launchesTotal.WithLabelValues("invalid").Inc()
		return Session{}, &ProvisioningError{Name: spec.Name, Err: err}
	}

	id, err := l.provider.CreateInstance(ctx, spec.createOpts())
	if err != nil {
		l.logger.Error(err, "Launch rejected", "name", spec.Name, "image", spec.Image, "size", spec.Size)
		launchesTotal.WithLabelValues("rejected").Inc()
		return Session{}, &ProvisioningError{Name: spec.Name, Err: err}
	}

	l.logger.Info("Launch submitted", "instance", id, "name", spec.Name)
	launchesTotal.WithLabelValues("submitted").Inc()
	return Session{InstanceID: id, Name: spec.Name}, nil
}
