package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/cloudlaunch/cmd/cloudlaunch/handlers"
)

// Launch returns the command that launches a new instance.
//
// The instance handle is stored in the session file so that later status
// calls can continue the same flow.
func Launch() *cobra.Command {
	var configPath string
	var sessionPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Launch a new instance",
		Long: `Launch a new instance from the launch template in the configuration.

The command returns as soon as the launch is accepted. Run 'cloudlaunch status'
until the instance is reachable.

Examples:
  # Launch using cloudlaunch.yaml from the current directory
  cloudlaunch launch

  # Keep the session somewhere else
  cloudlaunch launch --session /tmp/galaxy.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Launch(cmd.Context(), configPath, sessionPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: cloudlaunch.yaml)")
	cmd.Flags().StringVar(&sessionPath, "session", handlers.DefaultSessionFile, "Path to the session file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
