package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"nxdate-generator/internal/diagnostic"
)

// Pretty writes one line per diagnostic, errors first:
//
//	<pos>: <severity> <Code>: [<decl>.<field>] <message>
//
// followed by a count summary when anything was printed.
func Pretty(w io.Writer, diags diagnostic.Diagnostics, opts PrettyOpts) error {
	styles := map[diagnostic.Severity]*color.Color{
		diagnostic.SeverityError:   color.New(color.FgRed, color.Bold),
		diagnostic.SeverityWarning: color.New(color.FgYellow, color.Bold),
		diagnostic.SeverityInfo:    color.New(color.FgCyan),
	}

	faint := color.New(color.Faint)

	setColor(faint, opts.Color)

	for _, c := range styles {
		setColor(c, opts.Color)
	}

	printed := 0

	for _, d := range diags.All() {
		if d.Severity == diagnostic.SeverityInfo && !opts.ShowInfos {
			continue
		}

		line := ""
		if d.Pos != "" {
			line = faint.Sprint(d.Pos) + ": "
		}

		line += styles[d.Severity].Sprint(d.Severity.String())
		if d.Code != "" {
			line += " " + d.Code
		}

		line += ": "

		if d.Declaration != "" {
			target := d.Declaration
			if d.Field != "" {
				target += "." + d.Field
			}

			line += "[" + target + "] "
		}

		if _, err := fmt.Fprintln(w, line+d.Message); err != nil {
			return err
		}

		printed++
	}

	if printed == 0 {
		return nil
	}

	_, err := fmt.Fprintf(w, "%s, %s\n",
		plural(len(diags.Errors), "error"), plural(len(diags.Warnings), "warning"))

	return err
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}

	return fmt.Sprintf("%d %ss", n, word)
}

func setColor(c *color.Color, on bool) {
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}
