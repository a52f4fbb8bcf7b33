package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-yourage/internal/config"
	"github.com/tartampluch/go-yourage/internal/engine"
)

func TestRootCommand(t *testing.T) {
	opts := &RootOptions{}
	cmd := NewRootCommand(opts)
	require.NotNil(t, cmd)
	assert.Equal(t, config.CmdRoot, cmd.Use)
	assert.Equal(t, config.Version, cmd.Version)
	assert.IsType(t, engine.RealClock{}, opts.Clock, "Production commands use the wall clock")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(&RootOptions{})

	for _, cmdName := range []string{config.CmdServe, config.CmdShow} {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(&RootOptions{})

	debugFlag := cmd.PersistentFlags().Lookup(config.FlagDebug)
	require.NotNil(t, debugFlag)
	assert.Equal(t, "false", debugFlag.DefValue)
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCommand(&RootOptions{})
	serveCmd, _, err := cmd.Find([]string{config.CmdServe})
	require.NoError(t, err)

	portFlag := serveCmd.Flags().Lookup(config.FlagPort)
	require.NotNil(t, portFlag)
	assert.Equal(t, "p", portFlag.Shorthand)
	assert.Equal(t, config.DefaultPort, portFlag.DefValue)
}

func TestRootOptions_CloseWithoutLog(t *testing.T) {
	assert.NoError(t, (&RootOptions{}).Close())
}
