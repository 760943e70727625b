package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_Subcommands(t *testing.T) {
	cmd := Root()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "launch", "status", "list", "version"}, names)

	flag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}

func TestCommandFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
	}{
		{name: "serve", flags: []string{"config", "listen"}},
		{name: "launch", flags: []string{"config", "session", "json"}},
		{name: "status", flags: []string{"config", "session", "json"}},
		{name: "list", flags: []string{"config", "json"}},
	}

	root := Root()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, err := root.Find([]string{tt.name})
			require.NoError(t, err)
			for _, name := range tt.flags {
				assert.NotNil(t, cmd.Flags().Lookup(name), "missing --%s", name)
			}
			assert.NotNil(t, cmd.RunE)
		})
	}

	status, _, err := root.Find([]string{"status"})
	require.NoError(t, err)
	assert.Equal(t, ".cloudlaunch-session.json", status.Flags().Lookup("session").DefValue)
}

func TestVersion_Output(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() {
		version, commit, date = origVersion, origCommit, origDate
	}()

	SetVersionInfo("1.2.3", "abc123", "2026-10-16")

	var out bytes.Buffer
	cmd := Version()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "cloudlaunch 1.2.3\n  commit: abc123\n  built:  2026-10-16\n", out.String())
}
