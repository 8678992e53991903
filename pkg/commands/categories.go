package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/horrorlist/pkg/runner/categories"
)

func addCategories(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "key"},
		Short:   "Print the categories and their filter keys",
		Example: `
horrorlist categories
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			c := categories.Categories{}
			err := c.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
