package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/horrorlist/pkg/movie"
)

// PrettyPrint renders watchlists for the non-interactive commands.
type PrettyPrint struct {
	ShowID bool
	Codec  movie.DateCodec

	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " movie")
	default:
		_, _ = c.Fprintln(pp.out(), " movies")
	}
}

// Movies prints one row per movie: title and year, category, planned date and
// either the rating or the unwatched marker.
func (pp *PrettyPrint) Movies(movies ...movie.Movie) {
	if len(movies) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Faint)
	w := color.New(color.FgGreen)
	u := color.New(color.FgHiRed)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, m := range movies {
		status := u.Sprint("unwatched")
		if m.Watched {
			status = w.Sprintf("watched %s/10", m.RatingLabel())
		}
		row := []interface{}{m.String(), m.Category.String(), pp.Codec.Format(m.PlannedAt), status}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(m.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}
