package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/cloudlaunch/cmd/cloudlaunch/handlers"
)

// Status returns the command that checks the launched instance once.
func Status() *cobra.Command {
	var configPath string
	var sessionPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check the status of the launched instance",
		Long: `Check the instance recorded in the session file.

The first check that sees the instance running attaches a free floating IP.
Once the endpoint is reported, further checks are read-only.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Status(cmd.Context(), configPath, sessionPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: cloudlaunch.yaml)")
	cmd.Flags().StringVar(&sessionPath, "session", handlers.DefaultSessionFile, "Path to the session file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
