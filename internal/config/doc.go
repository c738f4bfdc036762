// Package config holds generator settings and loads them from YAML or TOML
// files.
//
// Example .nxdate.yaml:
//
//	suffix: _nxdate.go
//	helperImport: nxdate-generator/datefmt
//	textInfix: string_
//	dateInfix: date_
//	defaultPrefix: nx_
//	jobs: 4
package config
