package handlers

import (
	"context"

	"github.com/imamik/cloudlaunch/internal/lifecycle"
)

// Launch launches a new instance and records it in the session file.
func Launch(ctx context.Context, configPath, sessionPath string, jsonOutput bool) error {
	cfg, p, logger, err := setup(ctx, configPath)
	if err != nil {
		return err
	}

	existing, err := readSession(sessionPath)
	if err != nil {
		return err
	}
	if existing.HasInstance() && !existing.Ready() {
		logger.Info("Replacing unfinished session", "instance", existing.InstanceID, "session", sessionPath)
	}

	o := lifecycle.NewOrchestrator(p, launchTemplate(cfg), lifecycle.WithLogger(logger))
	report, s, err := o.RequestLaunch(ctx)
	if err != nil {
		return err
	}

	if err := writeSession(sessionPath, s); err != nil {
		return err
	}
	return printReport(report, s, jsonOutput)
}
