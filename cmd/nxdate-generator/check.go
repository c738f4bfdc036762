package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nxdate-generator/internal/diagfmt"
	"nxdate-generator/internal/diagnostic"
	"nxdate-generator/internal/gen"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [packages]",
		Short: "Report generated files that are out of date",
		Long: `Check regenerates in memory and fails when a generated file is missing,
differs from what gen would write, or belongs to a struct that no longer
exists. Nothing is written.`,
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	res, err := s.run(args)
	if err != nil {
		return err
	}

	files := res.Files()

	stale, err := gen.Check(files)
	if err != nil {
		return err
	}

	orphans, err := gen.Prune(res.Dirs, files, s.cfg.Suffix, true)
	if err != nil {
		return err
	}

	diags := res.Diagnostics

	for _, p := range stale {
		diags.AddError(diagnostic.CodeStale, "generated file is out of date, run gen", "", "", p)
	}

	for _, p := range orphans {
		diags.AddError(diagnostic.CodeStale, "generated file has no marked struct, run gen", "", "", p)
	}

	if err := s.report(diags, append(stale, orphans...)); err != nil {
		return err
	}

	if s.format == diagfmt.FormatPretty {
		fmt.Fprintln(cmd.OutOrStdout(), "generated files are up to date")
	}

	return nil
}
