// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/cloudlaunch/cmd/cloudlaunch/handlers"
)

// Root returns the root command for the cloudlaunch CLI.
func Root() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "cloudlaunch",
		Short: "Launch cloud instances and track them until they are reachable",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			handlers.SetVerbosity(verbosity)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")

	cmd.AddCommand(Serve())
	cmd.AddCommand(Launch())
	cmd.AddCommand(Status())
	cmd.AddCommand(List())
	cmd.AddCommand(Version())

	return cmd
}
