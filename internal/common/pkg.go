package common

import (
	"path"

	"golang.org/x/mod/module"
)

// UnknownStr is printed for enum values outside their declared range.
const UnknownStr = "unknown"

// PkgAlias returns the conventional package name for an import path: its
// last element with any major version suffix removed, so
// "example.com/datefmt/v2" and "gopkg.in/datefmt.v2" both give "datefmt".
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	if prefix, _, ok := module.SplitPathVersion(pkgPath); ok && prefix != "" {
		pkgPath = prefix
	}

	return path.Base(pkgPath)
}
