package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"nxdate-generator/internal/driver"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [packages]",
		Short: "Print the accessors that gen would generate",
		RunE:  runPlan,
	}

	cmd.Flags().Bool("dump", false, "dump the full accessor plan")

	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	dump, _ := cmd.Flags().GetBool("dump")

	res, err := s.run(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if dump {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		for _, u := range res.Units {
			fmt.Fprintf(out, "%s\n", u.Declaration.ID)
			cfg.Fdump(out, u.Accessors)
		}
	} else {
		for _, u := range res.Units {
			printUnit(out, u)
		}
	}

	return s.report(res.Diagnostics, nil)
}

func printUnit(w io.Writer, u driver.Unit) {
	target := "(not generated)"
	if u.File != nil {
		target = u.File.Filename
	}

	fmt.Fprintf(w, "%s -> %s\n", u.Declaration.ID, target)

	for _, a := range u.Accessors {
		fmt.Fprintf(w, "  %s() %s  <- %s (%s)\n", a.Name, a.Result.GoType(), a.Field, a.Directive.Keyword())
	}
}
