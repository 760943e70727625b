package handlers

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/cloudlaunch/internal/config"
	"github.com/imamik/cloudlaunch/internal/lifecycle"
	"github.com/imamik/cloudlaunch/internal/skill"
)

// listenAndServe runs the HTTP server (for testing injection).
var listenAndServe = skill.ListenAndServe

// Serve runs the voice skill endpoint until SIGINT or SIGTERM.
func Serve(ctx context.Context, configPath, listen string) error {
	cfg, p, logger, err := setup(ctx, configPath)
	if err != nil {
		return err
	}
	if listen == "" {
		listen = cfg.Server.Listen
	}

	timeouts := config.LoadTimeouts()
	o := lifecycle.NewOrchestrator(p, launchTemplate(cfg), lifecycle.WithLogger(logger.WithName("lifecycle")))
	h := skill.NewHandler(o, p, cfg.Cloud, skill.WithLogger(logger.WithName("skill")))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return listenAndServe(ctx, listen, skill.NewMux(h, timeouts.Request), timeouts, logger)
}
