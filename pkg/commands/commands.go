package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "horrorlist",
		Short: base.Wrap80("A horror movie watchlist for the terminal: plan what to watch, filter by sub-genre and rate what you have seen."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addDemo(topLevel)
	addCategories(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
