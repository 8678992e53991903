// Package categories prints the genre legend: filter keys, labels and the
// spellings the seed file accepts.
package categories

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/horrorlist/pkg/category"
	"tableflip.dev/horrorlist/pkg/filter"
)

// Categories prints the category legend.
type Categories struct {
	// Out defaults to color.Output.
	Out io.Writer
}

// Do renders the filter chips and the categories they select.
func (c *Categories) Do(ctx context.Context) error {
	out := c.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	_, _ = fmt.Fprintln(out, "")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Filter"), bold.Sprint("Accepts"))
	for i, opt := range filter.Options() {
		accepts := "every movie"
		if token, ok := opt.Token(); ok {
			accepts = strings.Join(category.Aliases(category.Category(token)), ", ")
		}
		tbl.AddRow(i+1, opt.Label(), accepts)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
