package simlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLocate_MissingDirectory(t *testing.T) {
	_, err := Locate(filepath.Join(t.TempDir(), "nope"), ExpectedNames(4), DefaultGlob)
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
}

func TestLocate_ExpectedNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "trace1.txt", "")
	writeFile(t, dir, "trace3.txt", "")

	located, err := Locate(dir, ExpectedNames(4), DefaultGlob)
	require.NoError(t, err)
	require.Len(t, located, 2)
	assert.Equal(t, 1, located[0].Trace)
	assert.Equal(t, 3, located[1].Trace)
}

func TestLocate_GlobFallback(t *testing.T) {
	dir := t.TempDir()
	// None of the expected names exist, but the glob finds these.
	writeFile(t, dir, "trace12.txt", "")
	writeFile(t, dir, "trace7.txt", "")

	located, err := Locate(dir, ExpectedNames(4), DefaultGlob)
	require.NoError(t, err)
	require.Len(t, located, 2)
	assert.Equal(t, []LocatedFile{
		{Trace: 7, Path: filepath.Join(dir, "trace7.txt")},
		{Trace: 12, Path: filepath.Join(dir, "trace12.txt")},
	}, located)
}

func TestLocate_SkipsUnparsableNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "trace7.txt", "")
	writeFile(t, dir, "traceX.txt", "") // matches the glob, has no number

	located, err := Locate(dir, nil, DefaultGlob)
	require.NoError(t, err)
	require.Len(t, located, 1)
	assert.Equal(t, 7, located[0].Trace)
}

func TestLocate_EmptyDirectory(t *testing.T) {
	_, err := Locate(t.TempDir(), ExpectedNames(4), DefaultGlob)
	assert.ErrorIs(t, err, ErrNoTracesFound)
}

func TestExpectedNames(t *testing.T) {
	assert.Equal(t, []string{"trace1.txt", "trace2.txt", "trace3.txt"}, ExpectedNames(3))
}
