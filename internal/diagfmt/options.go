package diagfmt

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Output formats.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Color modes.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// ShowInfos includes informational diagnostics.
	ShowInfos bool
}

// UseColor resolves a color mode for f. Auto enables color only on a terminal.
func UseColor(mode string, f *os.File) (bool, error) {
	switch mode {
	case ColorOn:
		return true, nil
	case ColorOff:
		return false, nil
	case ColorAuto, "":
		return f != nil && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown color mode %q (want auto|on|off)", mode)
	}
}
