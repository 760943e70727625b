package lifecycle

import (
	"time"

	"github.com/go-logr/logr"
)

type options struct {
	logger logr.Logger
	now    func() time.Time
}

// Option configures a Launcher, Poller, Claimer or Orchestrator.
type Option func(*options)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the clock used to generate display names.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger: logr.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
