package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/devantler-tech/templ-gen/pkg/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o600))
	}
}

func TestGlob(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "b-gateway.yaml", "a-gateway.yaml", "a-notes.txt")

	matches, err := fsutil.Glob(dir, "*.yaml")

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a-gateway.yaml"),
		filepath.Join(dir, "b-gateway.yaml"),
	}, matches)
}

func TestGlob_MissingDirectory(t *testing.T) {
	t.Parallel()

	matches, err := fsutil.Glob(filepath.Join(t.TempDir(), "absent"), "*.yaml")

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestGlob_DirectoryWithMetacharacters(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := filepath.Join(root, "out[1]*")
	decoy := filepath.Join(root, "out1x")

	require.NoError(t, os.Mkdir(dir, 0o750))
	require.NoError(t, os.Mkdir(decoy, 0o750))
	writeFiles(t, dir, "reviews-gateway.yaml")
	writeFiles(t, decoy, "ratings-gateway.yaml")

	matches, err := fsutil.Glob(dir, "*.yaml")

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "reviews-gateway.yaml")}, matches)
}

func TestGlob_BadPattern(t *testing.T) {
	t.Parallel()

	_, err := fsutil.Glob(t.TempDir(), "[")

	require.Error(t, err)
}

func TestEscapeGlob(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "a*-gateway.yaml", "ab-gateway.yaml")

	matches, err := fsutil.Glob(dir, fsutil.EscapeGlob("a*")+"-*.yaml")

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a*-gateway.yaml")}, matches)
	assert.Equal(t, `svc\[1\]\?`, fsutil.EscapeGlob("svc[1]?"))
}

func TestRemoveFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "a.yaml", "b.yaml")

	paths := []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yaml")}

	var notified []string

	removed, err := fsutil.RemoveFiles(paths, func(path string) {
		notified = append(notified, path)
	})

	require.NoError(t, err)
	assert.Equal(t, paths, removed)
	assert.Equal(t, paths, notified)
	assert.NoFileExists(t, paths[0])
	assert.NoFileExists(t, paths[1])
}

func TestRemoveFiles_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "a.yaml", "c.yaml")

	paths := []string{
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "b.yaml"),
		filepath.Join(dir, "c.yaml"),
	}

	removed, err := fsutil.RemoveFiles(paths, nil)

	require.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorContains(t, err, "failed to remove file")
	assert.Equal(t, paths[:1], removed)
	assert.FileExists(t, paths[2])
}
