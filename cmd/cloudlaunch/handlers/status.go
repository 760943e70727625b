package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/cloudlaunch/internal/lifecycle"
)

// Status polls the instance recorded in the session file once and stores
// the updated session.
func Status(ctx context.Context, configPath, sessionPath string, jsonOutput bool) error {
	cfg, p, logger, err := setup(ctx, configPath)
	if err != nil {
		return err
	}

	s, err := readSession(sessionPath)
	if err != nil {
		return err
	}

	o := lifecycle.NewOrchestrator(p, launchTemplate(cfg), lifecycle.WithLogger(logger))
	report, next, err := o.RequestStatus(ctx, s)
	switch {
	case err == nil:
	case errors.Is(err, lifecycle.ErrNoActiveInstance):
		return fmt.Errorf("%w: run 'cloudlaunch launch'", err)
	case lifecycle.IsTerminal(err):
		if rmErr := removeSession(sessionPath); rmErr != nil {
			return errors.Join(err, rmErr)
		}
		return fmt.Errorf("%w: session discarded, launch a new instance", err)
	case lifecycle.IsRetryable(err):
		return fmt.Errorf("%w: session unchanged, try again", err)
	default:
		return err
	}

	if err := writeSession(sessionPath, next); err != nil {
		return err
	}
	return printReport(report, next, jsonOutput)
}
