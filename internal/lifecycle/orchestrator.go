package lifecycle

import (
	"context"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

// Orchestrator exposes the per-turn operations used by the conversational layer.
type Orchestrator struct {
	launcher *Launcher
	poller   *Poller
	template LaunchTemplate
	now      func() time.Time
	logger   logr.Logger
}

// NewOrchestrator creates an Orchestrator launching instances from tmpl on p.
func NewOrchestrator(p provider.Provider, tmpl LaunchTemplate, opts ...Option) *Orchestrator {
	o := buildOptions(opts)
	return &Orchestrator{
		launcher: NewLauncher(p, opts...),
		poller:   NewPoller(p, opts...),
		template: tmpl,
		now:      o.now,
		logger:   o.logger,
	}
}

// RequestLaunch launches a new instance and runs the first poll.
// A failed first poll does not fail the launch: the returned Session holds
// the handle and the next status turn retries the poll.
func (o *Orchestrator) RequestLaunch(ctx context.Context) (Report, Session, error) {
	spec := NewLaunchSpec(o.template, o.now())

	session, err := o.launcher.Launch(ctx, spec)
	if err != nil {
		return Report{}, Session{}, err
	}

	report, next, err := o.poller.Poll(ctx, session)
	if err != nil {
		o.logger.V(1).Info("First poll after launch failed", "instance", session.InstanceID, "error", err.Error())
		return Report{
			Message:    "An instance is starting.",
			InstanceID: session.InstanceID,
			Name:       session.Name,
		}, session, nil
	}
	return report, next, nil
}

// RequestStatus runs one status poll for the session.
func (o *Orchestrator) RequestStatus(ctx context.Context, s Session) (Report, Session, error) {
	return o.poller.Poll(ctx, s)
}
