package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"nxdate-generator/internal/gen"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [packages]",
		Short: "Generate accessor files for marked structs",
		Long: `Generate loads the given packages (default "."), generates one accessor
file per marked struct, writes files whose content changed and removes
generated files whose struct no longer exists.`,
		RunE: runGen,
	}

	cmd.Flags().Bool("stdout", false, "print generated files instead of writing them")
	cmd.Flags().Bool("no-prune", false, "keep generated files of removed structs")

	return cmd
}

func runGen(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	toStdout, _ := cmd.Flags().GetBool("stdout")
	noPrune, _ := cmd.Flags().GetBool("no-prune")

	res, err := s.run(args)
	if err != nil {
		return err
	}

	files := res.Files()

	if toStdout {
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), "===", f.Path(), "===")
			fmt.Fprintln(cmd.OutOrStdout(), string(f.Content))
		}

		return s.report(res.Diagnostics, nil)
	}

	written, err := gen.WriteFiles(files)
	if err != nil {
		return err
	}

	for _, p := range written {
		s.logger.Info("wrote", slog.String("file", p))
	}

	touched := written

	// A failed pass may have dropped units that still exist; never prune then.
	if !noPrune && !res.Diagnostics.HasErrors() {
		removed, err := gen.Prune(res.Dirs, files, s.cfg.Suffix, false)
		if err != nil {
			return err
		}

		for _, p := range removed {
			s.logger.Info("removed", slog.String("file", p))
		}

		touched = append(touched, removed...)
	}

	return s.report(res.Diagnostics, touched)
}
