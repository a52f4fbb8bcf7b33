package cli

import (
	"net/url"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-yourage/internal/config"
	"github.com/tartampluch/go-yourage/internal/engine"
)

// showOptions holds the flags of the show command.
type showOptions struct {
	query    string
	name     string
	birthday string
}

// NewShowCommand prints the breakdown for a query string, or for explicit
// --name/--birthday values, then exits.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:           config.CmdShow,
		Short:         config.DescShow,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := opts.params(cmd)
			if err != nil {
				return err
			}
			state := engine.NewState(params, rootOpts.Clock.Now())
			return engine.NewView(state).WriteText(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.query, config.FlagQuery, "q", "", config.FlagDescQuery)
	cmd.Flags().StringVarP(&opts.name, config.FlagName, "n", "", config.FlagDescName)
	cmd.Flags().StringVarP(&opts.birthday, config.FlagBirthday, "b", "", config.FlagDescBirthday)
	cmd.MarkFlagsMutuallyExclusive(config.FlagQuery, config.FlagName)
	cmd.MarkFlagsMutuallyExclusive(config.FlagQuery, config.FlagBirthday)

	return cmd
}

// params resolves the flags into query parameters. Explicit values go
// through the same input actions as the window, so a bad birthday is
// dropped rather than rejected.
func (o *showOptions) params(cmd *cobra.Command) (engine.QueryParams, error) {
	if cmd.Flags().Changed(config.FlagQuery) {
		return engine.DecodeQuery(o.query), nil
	}

	values := url.Values{
		config.QueryKeyName:     {o.name},
		config.QueryKeyBirthday: {o.birthday},
	}

	state := engine.State{}
	for _, field := range []string{config.QueryKeyName, config.QueryKeyBirthday} {
		action, err := engine.ActionFromInput(field, values)
		if err != nil {
			return engine.QueryParams{}, err
		}
		state, _ = engine.Reduce(state, action)
	}
	return state.Query(), nil
}
