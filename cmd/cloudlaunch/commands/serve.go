package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/cloudlaunch/cmd/cloudlaunch/handlers"
)

// Serve returns the command that runs the voice skill HTTP endpoint.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect cloudlaunch.yaml)
//	--listen: Address to listen on (overrides server.listen)
func Serve() *cobra.Command {
	var configPath string
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the voice skill endpoint",
		Long: `Serve the voice skill over HTTP.

Routes:
  POST /         skill requests (LaunchRequest, IntentRequest, SessionEndedRequest)
  GET  /healthz  liveness probe
  GET  /metrics  Prometheus metrics

Request handling is bounded by CLOUDLAUNCH_REQUEST_TIMEOUT.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Serve(cmd.Context(), configPath, listen)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: cloudlaunch.yaml)")
	cmd.Flags().StringVar(&listen, "listen", "", "Address to listen on (default: server.listen or :8080)")

	return cmd
}
