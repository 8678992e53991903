package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/horrorlist/pkg/commands/options"
	"tableflip.dev/horrorlist/pkg/movie"
	"tableflip.dev/horrorlist/pkg/runner/demo"
)

func addDemo(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through adding, rating and filtering a movie",
		Example: `
horrorlist demo
horrorlist demo --show-id
horrorlist demo --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			d := demo.Demo{
				JSON:   output.JSON,
				ShowID: io.ShowID,
				Codec:  movie.Local,
			}
			err := d.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
