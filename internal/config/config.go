package config

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// DefaultHelperImport is the runtime helper package generated code calls.
const DefaultHelperImport = "nxdate-generator/datefmt"

// DefaultFiles are looked up, in order, when no config path is given.
var DefaultFiles = []string{".nxdate.yaml", ".nxdate.yml", ".nxdate.toml"}

// ErrInvalid is returned for configurations that fail validation.
var ErrInvalid = errors.New("invalid config")

// Config holds configuration for accessor generation.
type Config struct {
	// Suffix is appended to the lower-cased declaration name to form the
	// generated file name.
	Suffix string `yaml:"suffix,omitempty" toml:"suffix,omitempty"`
	// HelperImport is the import path of the runtime helper package.
	HelperImport string `yaml:"helperImport,omitempty" toml:"helperImport,omitempty"`
	// TextInfix is inserted before the field name of string accessors when a
	// field carries directives of both families.
	TextInfix string `yaml:"textInfix,omitempty" toml:"textInfix,omitempty"`
	// DateInfix is inserted before the field name of date accessors when a
	// field carries directives of both families.
	DateInfix string `yaml:"dateInfix,omitempty" toml:"dateInfix,omitempty"`
	// DefaultPrefix replaces empty directive prefixes.
	DefaultPrefix string `yaml:"defaultPrefix,omitempty" toml:"defaultPrefix,omitempty"`
	// Jobs bounds how many declarations are processed concurrently (0 or 1 = sequential).
	Jobs int `yaml:"jobs,omitempty" toml:"jobs,omitempty"`
}

// Default returns the default generator configuration.
func Default() Config {
	return Config{
		Suffix:       "_nxdate.go",
		HelperImport: DefaultHelperImport,
		TextInfix:    "String_",
		DateInfix:    "Date_",
	}
}

// Load reads a config file. The format is chosen by extension; keys that
// are absent keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("failed to parse config YAML %s: %w", path, err)
		}
	case ".toml":
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config TOML %s: %w", path, err)
		}

		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("%w: unknown keys %v in %s", ErrInvalid, undecoded, path)
		}
	default:
		return cfg, fmt.Errorf("%w: unsupported config format %q", ErrInvalid, filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Discover loads the first default config file found in dir, or returns
// the defaults when there is none.
func Discover(dir string) (Config, string, error) {
	for _, name := range DefaultFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}

		cfg, err := Load(p)

		return cfg, p, err
	}

	return Default(), "", nil
}

// Validate checks the configuration for values that would produce
// uncompilable or colliding output.
func (c Config) Validate() error {
	switch {
	case !strings.HasSuffix(c.Suffix, ".go"):
		return fmt.Errorf("%w: suffix %q must end in .go", ErrInvalid, c.Suffix)
	case !strings.HasPrefix(c.Suffix, "_") || len(c.Suffix) <= len("_.go"):
		return fmt.Errorf("%w: suffix %q must look like _name.go", ErrInvalid, c.Suffix)
	case strings.HasSuffix(c.Suffix, "_test.go"):
		return fmt.Errorf("%w: suffix %q would produce test files", ErrInvalid, c.Suffix)
	case strings.ContainsAny(c.Suffix, `/\`):
		return fmt.Errorf("%w: suffix %q must not contain path separators", ErrInvalid, c.Suffix)
	case c.HelperImport == "":
		return fmt.Errorf("%w: helperImport is required", ErrInvalid)
	case c.TextInfix == c.DateInfix:
		return fmt.Errorf("%w: textInfix and dateInfix must differ", ErrInvalid)
	case c.Jobs < 0:
		return fmt.Errorf("%w: jobs must not be negative", ErrInvalid)
	}

	if err := module.CheckImportPath(c.HelperImport); err != nil {
		return fmt.Errorf("%w: helperImport: %w", ErrInvalid, err)
	}

	for name, part := range map[string]string{
		"textInfix":     c.TextInfix,
		"dateInfix":     c.DateInfix,
		"defaultPrefix": c.DefaultPrefix,
	} {
		if part != "" && !token.IsIdentifier("x"+part) {
			return fmt.Errorf("%w: %s %q cannot be part of an identifier", ErrInvalid, name, part)
		}
	}

	return nil
}
