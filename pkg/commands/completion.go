package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/horrorlist/pkg/category"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(horrorlist completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(horrorlist completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func categoryCompletions(toComplete string) []string {
	var cs []string
	for _, c := range category.All() {
		name := strings.ToLower(c.String())
		if strings.HasPrefix(name, strings.ToLower(toComplete)) {
			cs = append(cs, name)
		}
	}
	return cs
}
