package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-yourage/internal/config"
	"github.com/tartampluch/go-yourage/internal/engine"
)

// RootOptions holds global flags and the dependencies shared by all commands.
type RootOptions struct {
	Debug bool

	// Clock stamps every state; tests inject a fixed one.
	Clock engine.Clock

	logCloser io.Closer
}

// Close releases the log file opened by the root command, if any.
func (o *RootOptions) Close() error {
	if o.logCloser == nil {
		return nil
	}
	return o.logCloser.Close()
}

// NewRootCommand creates the root command. Without a subcommand it opens
// the desktop window.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	if opts.Clock == nil {
		opts.Clock = engine.RealClock{}
	}

	cmd := &cobra.Command{
		Use:           config.CmdRoot,
		Short:         config.DescRoot,
		Version:       config.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Logs go to stderr so `show` output stays clean on stdout.
			opts.logCloser = setupLogging(opts.Debug, cmd.ErrOrStderr())
			logStartupInfo()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd.Context(), opts)
		},
	}

	cmd.SetVersionTemplate(fmt.Sprintf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	))

	cmd.PersistentFlags().BoolVar(&opts.Debug, config.FlagDebug, false, config.FlagDescDebug)

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))

	return cmd
}
