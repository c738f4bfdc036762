package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unit(dir, name, body string) GeneratedFile {
	return GeneratedFile{
		Dir:      dir,
		Filename: name,
		Content:  []byte(GeneratedHeader + "\n\npackage p\n" + body),
	}
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "p")
	files := []GeneratedFile{unit(dir, "a_nxdate.go", ""), unit(dir, "b_nxdate.go", "")}

	written, err := WriteFiles(files)
	require.NoError(t, err)
	assert.Equal(t, []string{files[0].Path(), files[1].Path()}, written)

	got, err := os.ReadFile(files[0].Path())
	require.NoError(t, err)
	assert.Equal(t, files[0].Content, got)

	// Identical content is not rewritten.
	written, err = WriteFiles(files)
	require.NoError(t, err)
	assert.Empty(t, written)

	files[1].Content = append(files[1].Content, "// changed\n"...)
	written, err = WriteFiles(files)
	require.NoError(t, err)
	assert.Equal(t, []string{files[1].Path()}, written)
}

func TestWriteFiles_NoDir(t *testing.T) {
	_, err := WriteFiles([]GeneratedFile{unit("", "a_nxdate.go", "")})
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	fresh := unit(dir, "a_nxdate.go", "")
	stale := unit(dir, "b_nxdate.go", "")
	missing := unit(dir, "c_nxdate.go", "")

	_, err := WriteFiles([]GeneratedFile{fresh, stale})
	require.NoError(t, err)

	stale.Content = append(stale.Content, "// newer\n"...)

	out, err := Check([]GeneratedFile{fresh, stale, missing})
	require.NoError(t, err)
	assert.Equal(t, []string{stale.Path(), missing.Path()}, out)
}

func TestPrune(t *testing.T) {
	dir := t.TempDir()
	keep := unit(dir, "kept_nxdate.go", "")
	orphan := unit(dir, "gone_nxdate.go", "")

	_, err := WriteFiles([]GeneratedFile{keep, orphan})
	require.NoError(t, err)

	// Files without the header are never touched, whatever their name.
	handWritten := filepath.Join(dir, "manual_nxdate.go")
	require.NoError(t, os.WriteFile(handWritten, []byte("package p\n"), 0o644))

	removed, err := Prune([]string{dir}, []GeneratedFile{keep}, "_nxdate.go", true)
	require.NoError(t, err)
	assert.Equal(t, []string{orphan.Path()}, removed)
	assert.FileExists(t, orphan.Path(), "dry run keeps files")

	removed, err = Prune([]string{dir}, []GeneratedFile{keep}, "_nxdate.go", false)
	require.NoError(t, err)
	assert.Equal(t, []string{orphan.Path()}, removed)
	assert.NoFileExists(t, orphan.Path())
	assert.FileExists(t, keep.Path())
	assert.FileExists(t, handWritten)
}
