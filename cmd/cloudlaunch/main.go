// Package main is the entry point for the cloudlaunch CLI.
//
// cloudlaunch launches a compute instance, tracks it across independent
// status checks and attaches a floating IP once the instance runs. The same
// flow is served to voice assistants by the serve command.
//
// Commands: serve, launch, status, list, version.
//
// For detailed usage information, run:
//
//	cloudlaunch --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/cloudlaunch/cmd/cloudlaunch/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
