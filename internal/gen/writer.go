package gen

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files into their package directories and
// returns the paths that were actually written. Files whose content on disk
// is already identical are left untouched.
func WriteFiles(files []GeneratedFile) ([]string, error) {
	var written []string

	for _, file := range files {
		if file.Dir == "" {
			return written, fmt.Errorf("writing file %s: no output directory for %s", file.Filename, file.Declaration)
		}

		outputPath := file.Path()

		existing, err := os.ReadFile(outputPath)
		if err == nil && bytes.Equal(existing, file.Content) {
			continue
		}

		if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
			return written, fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return written, fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		written = append(written, outputPath)
	}

	return written, nil
}

// Check returns the paths of generated files that are missing on disk or
// whose content differs.
func Check(files []GeneratedFile) ([]string, error) {
	var stale []string

	for _, file := range files {
		existing, err := os.ReadFile(file.Path())

		switch {
		case errors.Is(err, fs.ErrNotExist):
			stale = append(stale, file.Path())
		case err != nil:
			return stale, fmt.Errorf("reading %s: %w", file.Path(), err)
		case !bytes.Equal(existing, file.Content):
			stale = append(stale, file.Path())
		}
	}

	return stale, nil
}

// Prune removes generated units in dirs that were not produced by the
// current pass, e.g. after a declaration lost its marker or was renamed.
// Only files ending in suffix and starting with GeneratedHeader are touched.
// With dryRun set nothing is removed and the orphan paths are only reported.
func Prune(dirs []string, keep []GeneratedFile, suffix string, dryRun bool) ([]string, error) {
	kept := make(map[string]bool, len(keep))
	for _, f := range keep {
		kept[filepath.Clean(f.Path())] = true
	}

	var removed []string

	for _, dir := range dirs {
		if dir == "" {
			continue
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return removed, fmt.Errorf("reading directory %s: %w", dir, err)
		}

		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
				continue
			}

			p := filepath.Clean(filepath.Join(dir, e.Name()))
			if kept[p] {
				continue
			}

			generated, err := isGeneratedUnit(p)
			if err != nil {
				return removed, err
			}

			if !generated {
				continue
			}

			if !dryRun {
				if err := os.Remove(p); err != nil {
					return removed, fmt.Errorf("removing %s: %w", p, err)
				}
			}

			removed = append(removed, p)
		}
	}

	sort.Strings(removed)

	return removed, nil
}

// isGeneratedUnit reports whether the file starts with GeneratedHeader.
func isGeneratedUnit(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}

	return strings.TrimRight(line, "\r\n") == GeneratedHeader, nil
}
