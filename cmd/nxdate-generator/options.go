package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"nxdate-generator/internal/config"
	"nxdate-generator/internal/diagfmt"
	"nxdate-generator/internal/diagnostic"
	"nxdate-generator/internal/driver"
)

// session holds what every subcommand needs after flag resolution.
type session struct {
	cmd    *cobra.Command
	cfg    config.Config
	logger *slog.Logger
	format string
	color  bool
}

func newSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	format, err := flags.GetString("format")
	if err != nil {
		return nil, fmt.Errorf("failed to get format flag: %w", err)
	}

	if format != diagfmt.FormatPretty && format != diagfmt.FormatJSON {
		return nil, fmt.Errorf("unknown format %q (want pretty|json)", format)
	}

	colorMode, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}

	verbose, _ := flags.GetBool("verbose")
	quiet, _ := flags.GetBool("quiet")
	jobs, _ := flags.GetInt("jobs")

	s := &session{cmd: cmd, format: format}

	// Color is only decided for the real stdout; test writers stay plain.
	out, _ := cmd.OutOrStdout().(*os.File)

	s.color, err = diagfmt.UseColor(colorMode, out)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo

	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}

	s.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if configPath != "" {
		s.cfg, err = config.Load(configPath)
	} else {
		var wd string

		wd, err = os.Getwd()
		if err == nil {
			s.cfg, configPath, err = config.Discover(wd)
		}
	}

	if err != nil {
		return nil, err
	}

	if jobs > 0 {
		s.cfg.Jobs = jobs
	}

	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	if configPath != "" {
		s.logger.Debug("config loaded", slog.String("path", configPath))
	}

	return s, nil
}

// run executes one generation pass over patterns (default ".").
func (s *session) run(patterns []string) (*driver.Result, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	return driver.New(s.cfg, s.logger).Generate(s.cmd.Context(), patterns...)
}

// report prints diagnostics and returns errReported when any are errors.
func (s *session) report(diags diagnostic.Diagnostics, files []string) error {
	out := s.cmd.OutOrStdout()

	var err error
	if s.format == diagfmt.FormatJSON {
		err = diagfmt.JSON(out, diags, files)
	} else {
		err = diagfmt.Pretty(s.cmd.ErrOrStderr(), diags, diagfmt.PrettyOpts{Color: s.color})
	}

	if err != nil {
		return fmt.Errorf("writing diagnostics: %w", err)
	}

	if diags.HasErrors() {
		return errReported
	}

	return nil
}
