package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"localecheck/internal/diag"
)

const (
	noErrorsHeader = "No error found!"
	errorsHeader   = "Errors Found:"
)

type palette struct {
	header  *color.Color
	ok      *color.Color
	rule    *color.Color
	subject *color.Color
	dim     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		header:  color.New(color.FgRed, color.Bold),
		ok:      color.New(color.FgGreen, color.Bold),
		rule:    color.New(color.FgYellow, color.Bold),
		subject: color.New(color.FgCyan),
		dim:     color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.header, p.ok, p.rule, p.subject, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty печатает диагностики, сгруппированные по правилам:
//
//	Errors Found:
//	  <Rule>
//	    <subject>[: <message>]
//
// или "No error found!", если коллектор пуст.
func Pretty(w io.Writer, c *diag.Collector, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	if !c.HasErrors() {
		_, err := p.ok.Fprintln(w, noErrorsHeader)
		return err
	}
	if _, err := p.header.Fprintln(w, errorsHeader); err != nil {
		return err
	}
	shown := 0
	for rule, items := range c.Groups() {
		if opts.Max > 0 && shown >= opts.Max {
			break
		}
		if _, err := fmt.Fprintf(w, "  %s\n", p.rule.Sprint(rule)); err != nil {
			return err
		}
		for _, d := range items {
			if opts.Max > 0 && shown >= opts.Max {
				break
			}
			line := "    " + p.subject.Sprint(truncate(d.Subject, opts.Width))
			if d.Message != nil {
				line += ": " + *d.Message
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
			shown++
		}
	}
	if rest := c.Len() - shown; rest > 0 {
		if _, err := p.dim.Fprintf(w, "  ... and %d more\n", rest); err != nil {
			return err
		}
	}
	return nil
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
