// Package handlers implements the CLI command logic.
//
// Each exported function backs one cobra command. Collaborators are held in
// package-level factory variables so tests can replace the provider, output
// and terminal detection.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/mattn/go-isatty"

	"github.com/imamik/cloudlaunch/internal/config"
	"github.com/imamik/cloudlaunch/internal/lifecycle"
	"github.com/imamik/cloudlaunch/internal/platform/ec2"
	"github.com/imamik/cloudlaunch/internal/platform/hcloud"
	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

// DefaultSessionFile is where launch and status keep the session between runs.
const DefaultSessionFile = ".cloudlaunch-session.json"

// verbosity is set from the --verbose flag.
var verbosity int

// SetVerbosity sets the log verbosity for subsequent commands.
func SetVerbosity(v int) {
	verbosity = v
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newProvider creates the configured backend wrapped with metrics.
	newProvider = func(ctx context.Context, cfg *config.Config) (provider.Provider, error) {
		switch cfg.Provider {
		case config.ProviderHCloud:
			return provider.Instrumented(hcloud.BackendName, hcloud.NewRealClient(cfg.HCloud.Token)), nil
		case config.ProviderEC2:
			client, err := ec2.NewClient(ctx, ec2.Options{
				Region:          cfg.EC2.Region,
				AccessKeyID:     cfg.EC2.AccessKeyID,
				SecretAccessKey: cfg.EC2.SecretAccessKey,
				Endpoint:        cfg.EC2.Endpoint,
			})
			if err != nil {
				return nil, err
			}
			return provider.Instrumented(ec2.BackendName, client), nil
		default:
			return nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
		}
	}

	// loadConfigFile loads config from file (for testing injection).
	loadConfigFile = config.Load

	// findConfigFile finds the config file (for testing injection).
	findConfigFile = config.FindConfigFile

	// stdout receives command output.
	stdout io.Writer = os.Stdout

	// stderr receives log output.
	stderr io.Writer = os.Stderr

	// isTerminal reports whether stdout is an interactive terminal.
	isTerminal = func() bool {
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	// now is the clock used for ages in listings.
	now = time.Now
)

// loadConfig loads and validates the configuration.
// If configPath is empty, it looks for cloudlaunch.yaml in the current
// directory and its parents.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		path, err := findConfigFile()
		if err != nil {
			return nil, fmt.Errorf("no config file found: %w", err)
		}
		configPath = path
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the stderr logger. Verbosity is the larger of the
// --verbose count and CLOUDLAUNCH_LOG_VERBOSITY.
func newLogger() logr.Logger {
	v := verbosity
	if env, err := strconv.Atoi(os.Getenv("CLOUDLAUNCH_LOG_VERBOSITY")); err == nil && env > v {
		v = env
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(stderr, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(stderr, args)
	}, funcr.Options{
		LogTimestamp: true,
		Verbosity:    v,
	})
}

// setup loads the configuration and creates the provider and logger.
func setup(ctx context.Context, configPath string) (*config.Config, provider.Provider, logr.Logger, error) {
	logger := newLogger()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, logger, err
	}

	p, err := newProvider(ctx, cfg)
	if err != nil {
		return nil, nil, logger, fmt.Errorf("failed to create %s provider: %w", cfg.Provider, err)
	}
	return cfg, p, logger.WithValues("provider", cfg.Provider), nil
}

func launchTemplate(cfg *config.Config) lifecycle.LaunchTemplate {
	return lifecycle.LaunchTemplate{
		Image:          cfg.Launch.Image,
		Size:           cfg.Launch.Size,
		Network:        cfg.Launch.Network,
		KeyPair:        cfg.Launch.KeyPair,
		SecurityGroups: cfg.Launch.SecurityGroups,
		Location:       cfg.Launch.Location,
		NamePrefix:     cfg.NamePrefix,
	}
}

// readSession reads the session file. A missing file yields an empty session.
func readSession(path string) (lifecycle.Session, error) {
	var s lifecycle.Session
	data, err := os.ReadFile(path) // #nosec G304
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read session file: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse session file %s: %w", path, err)
	}
	return s, nil
}

func writeSession(path string, s lifecycle.Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func removeSession(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// reportOutput is the JSON form of a lifecycle report.
type reportOutput struct {
	Message    string            `json:"message"`
	InstanceID string            `json:"instanceId"`
	Name       string            `json:"name,omitempty"`
	State      string            `json:"state,omitempty"`
	Endpoint   string            `json:"endpoint,omitempty"`
	Done       bool              `json:"done"`
	Session    lifecycle.Session `json:"session"`
}

// printReport writes the report as JSON when requested or when stdout is
// not a terminal, and as plain sentences otherwise.
func printReport(report lifecycle.Report, s lifecycle.Session, jsonOutput bool) error {
	if jsonOutput || !isTerminal() {
		return printJSON(reportOutput{
			Message:    report.Message,
			InstanceID: report.InstanceID,
			Name:       report.Name,
			State:      string(report.State),
			Endpoint:   report.Endpoint,
			Done:       report.Done(),
			Session:    s,
		})
	}

	fmt.Fprintln(stdout, report.Message)
	if !report.Done() && s.HasInstance() {
		fmt.Fprintln(stdout, "Run 'cloudlaunch status' to check again.")
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
