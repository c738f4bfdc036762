package main

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const examplePkg = "nxdate-generator/examples/basic"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestPlan(t *testing.T) {
	out, _, err := execute(t, "plan", "--quiet", examplePkg)
	require.NoError(t, err)

	assert.Contains(t, out, examplePkg+".DateTest -> datetest_nxdate.go\n")
	assert.Contains(t, out, "  nx_String_DateOne() string  <- DateOne (stringToString)\n")
	assert.Contains(t, out, "  nx_Date_DateOne() *time.Time  <- DateOne (stringToDate)\n")
	assert.Contains(t, out, "  ParsedBirthday() *time.Time  <- Birthday (stringToDate)\n")
}

func TestPlan_Dump(t *testing.T) {
	out, _, err := execute(t, "plan", "--quiet", "--dump", examplePkg)
	require.NoError(t, err)

	assert.Contains(t, out, "([]plan.Accessor)")
	assert.Contains(t, out, `Name: (string) (len=17) "nx_String_DateOne"`)
}

func TestGen_Stdout(t *testing.T) {
	out, _, err := execute(t, "gen", "--quiet", "--stdout", examplePkg)
	require.NoError(t, err)

	assert.Contains(t, out, "userdto_nxdate.go ===\n")
	assert.Contains(t, out, "// Code generated by nxdate-generator. DO NOT EDIT.")
	assert.Contains(t, out, "func (u UserDTO) LongCreatedAt() string {")
}

func TestCheck_ReportsMissingUnitsAsJSON(t *testing.T) {
	out, _, err := execute(t, "check", "--quiet", "--format", "json", examplePkg)
	require.ErrorIs(t, err, errReported)

	var report struct {
		Errors int      `json:"errors"`
		Files  []string `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 3, report.Errors)
	assert.Len(t, report.Files, 3)
}

func TestUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "plan", "--format", "xml", examplePkg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
