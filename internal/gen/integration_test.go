package gen_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func copyFile(t *testing.T, src, dst string) {
	t.Helper()

	b, err := os.ReadFile(src)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dst, b, 0o644))
}

func runGo(t *testing.T, dir, outDir string, args ...string) {
	t.Helper()

	cmd := exec.CommandContext(t.Context(), "go", args...)
	cmd.Dir = dir

	b, err := cmd.CombinedOutput()
	if err == nil {
		return
	}

	// Best-effort: dump what got generated for easier debugging.
	if entries, readErr := os.ReadDir(outDir); readErr == nil {
		for _, e := range entries {
			p := filepath.Join(outDir, e.Name())
			if fb, rerr := os.ReadFile(p); rerr == nil && !e.IsDir() {
				t.Logf("file %s:\n%s", p, string(fb))
			}
		}
	}

	t.Fatalf("go %v failed: %v\n%s", args, err, string(b))
}

// The example is copied to a fresh package inside the module so that the
// generated units import the in-module helper package.
func TestGenerate_BasicExample_CompilesAndRuns(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the go tool")
	}

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	workDir, err := os.MkdirTemp(filepath.Join(repoRoot, "examples"), "basic-generated-")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(workDir) })

	copyFile(t, filepath.Join(repoRoot, "examples", "basic", "models.go"), filepath.Join(workDir, "models.go"))
	copyFile(t, filepath.Join("testdata", "basic", "accessors_test.go"), filepath.Join(workDir, "accessors_test.go"))

	// A leftover debug sidecar must neither break loading nor the build.
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "_datetest_nxdate.unformatted.go"),
		[]byte("package basic\n\nfunc broken( {\n"), 0o644))

	pkg := "./examples/" + filepath.Base(workDir)

	runGo(t, repoRoot, workDir, "run", "./cmd/nxdate-generator", "gen", "--quiet", pkg)

	for _, name := range []string{"datetest_nxdate.go", "datetimetest_nxdate.go", "userdto_nxdate.go"} {
		assert.FileExists(t, filepath.Join(workDir, name))
	}

	runGo(t, repoRoot, workDir, "test", pkg, "-count=1")

	// A second pass finds nothing to change.
	runGo(t, repoRoot, workDir, "run", "./cmd/nxdate-generator", "check", "--quiet", pkg)
}
