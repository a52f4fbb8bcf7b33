package cli

import (
	"github.com/spf13/cobra"
	"github.com/tartampluch/go-yourage/internal/config"
	"github.com/tartampluch/go-yourage/internal/server"
)

// NewServeCommand runs the share server headless until interrupted.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:           config.CmdServe,
		Short:         config.DescServe,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.NewShareServer(port, rootOpts.Clock).Start(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&port, config.FlagPort, "p", config.DefaultPort, config.FlagDescPort)

	return cmd
}
