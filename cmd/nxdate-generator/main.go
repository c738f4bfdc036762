// Package main provides the CLI entrypoint for nxdate-generator.
//
// nxdate-generator is a go:generate tool that:
//   - Finds structs marked with //nxdate:extension
//   - Reads the date directives attached to their fields
//   - Generates formatting and parsing accessors next to each struct
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errReported signals that diagnostics were already printed.
var errReported = errors.New("generation reported errors")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nxdate-generator",
		Short:         "Generate date accessors for annotated Go structs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "config file (default: .nxdate.yaml, .nxdate.yml or .nxdate.toml in the working directory)")
	root.PersistentFlags().String("format", "pretty", "diagnostics format (pretty|json)")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log debug output")
	root.PersistentFlags().BoolP("quiet", "q", false, "log errors only")
	root.PersistentFlags().Int("jobs", 0, "declarations processed in parallel (0 = use config)")

	root.AddCommand(newGenCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newPlanCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "nxdate-generator:", err)
		}

		os.Exit(1)
	}
}
