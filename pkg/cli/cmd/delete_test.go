package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelete_RemovesGeneratedTemplates(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runCLI(t, "generate", "-s", "reviews")
	require.NoError(t, err)

	out, err := runCLI(t, "delete", "-s", "reviews")
	require.NoError(t, err)

	expected := "✖ Deleted: templ-gen/reviews-destination-rule.yaml\n" +
		"✖ Deleted: templ-gen/reviews-gateway.yaml\n" +
		"✖ Deleted: templ-gen/reviews-service-entry.yaml\n" +
		"✖ Deleted: templ-gen/reviews-virtual-service.yaml\n" +
		"✔ deleted 4 templates for service reviews\n"
	assert.Equal(t, expected, out)

	entries, err := os.ReadDir("templ-gen")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDelete_NoTemplatesIsNotAnError(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "delete", "-s", "reviews", "-o", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "ℹ No template files found for service: reviews\n", out)
}

func TestDelete_KeepsOtherServices(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := runCLI(t, "generate", "-s", "foo", "-o", dir)
	require.NoError(t, err)

	_, err = runCLI(t, "generate", "-s", "foo-bar", "-o", dir)
	require.NoError(t, err)

	_, err = runCLI(t, "delete", "-s", "foo", "-o", dir)
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dir, "foo-gateway.yaml"))
	assert.FileExists(t, filepath.Join(dir, "foo-bar-gateway.yaml"))
	assert.FileExists(t, filepath.Join(dir, "foo-bar-virtual-service.yaml"))
}

func TestDelete_StopsOnRemovalFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := runCLI(t, "generate", "-s", "reviews", "-o", dir)
	require.NoError(t, err)

	gateway := filepath.Join(dir, "reviews-gateway.yaml")
	require.NoError(t, os.Remove(gateway))
	require.NoError(t, os.Mkdir(gateway, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(gateway, "keep"), nil, 0o600))

	out, err := runCLI(t, "delete", "-s", "reviews", "-o", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete templates for service reviews")

	assert.Contains(t, out, "✖ Deleted: "+filepath.Join(dir, "reviews-destination-rule.yaml"))
	assert.FileExists(t, filepath.Join(dir, "reviews-service-entry.yaml"))
	assert.FileExists(t, filepath.Join(dir, "reviews-virtual-service.yaml"))
}

func TestDelete_MissingService(t *testing.T) {
	t.Parallel()

	_, err := runCLI(t, "delete", "-o", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "service" not set`)
}

func TestDelete_IgnoresNamespaceAndDomain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := runCLI(t, "generate", "-s", "reviews", "-n", "bookinfo", "-o", dir)
	require.NoError(t, err)

	out, err := runCLI(t, "delete", "-s", "reviews", "-n", "other", "-d", "example.org", "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✔ deleted 4 templates for service reviews\n")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
