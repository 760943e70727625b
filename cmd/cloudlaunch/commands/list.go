package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/cloudlaunch/cmd/cloudlaunch/handlers"
)

// List returns the command that lists instances, newest first.
func List() *cobra.Command {
	var configPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List instances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.List(cmd.Context(), configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: cloudlaunch.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
