// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/horrorlist/pkg/category"
	"tableflip.dev/horrorlist/pkg/filter"
)

// UIOptions captures the flags of the interactive watchlist.
type UIOptions struct {
	Seed    string
	NoAudio bool
	Filter  string
}

// AddUIArgs wires the ui flags on cmd.
func AddUIArgs(cmd *cobra.Command, o *UIOptions) {
	cmd.Flags().StringVar(&o.Seed, "seed", "",
		"YAML file of movies to start the watchlist with.")
	cmd.Flags().BoolVar(&o.NoAudio, "no-audio", false,
		"Do not play the background theme.")
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "",
		`Start with a category filter, example: --filter=classic.`)
}

// GetFilter returns the filter named by --filter, or filter.All when unset.
// Known categories and their aliases select the canonical chip; any other
// text is used as a raw substring.
func (o *UIOptions) GetFilter() filter.Filter {
	if o.Filter == "" {
		return filter.All
	}
	if c, err := category.Parse(o.Filter); err == nil {
		return filter.ForCategory(c)
	}
	return filter.By(o.Filter)
}
