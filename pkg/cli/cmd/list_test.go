package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := runCLI(t, "generate", "-s", "foo", "-o", dir)
	require.NoError(t, err)

	_, err = runCLI(t, "generate", "-s", "foo-bar", "-o", dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("notes"), 0o600))

	t.Run("scoped to a service", func(t *testing.T) {
		t.Parallel()

		out, err := runCLI(t, "list", "-s", "foo", "-o", dir)
		require.NoError(t, err)

		expected := "📄 Existing templates:\n" +
			"- foo-destination-rule.yaml\n" +
			"- foo-gateway.yaml\n" +
			"- foo-service-entry.yaml\n" +
			"- foo-virtual-service.yaml\n"
		assert.Equal(t, expected, out)
	})

	t.Run("all templates", func(t *testing.T) {
		t.Parallel()

		out, err := runCLI(t, "list", "-o", dir)
		require.NoError(t, err)

		assert.Contains(t, out, "- foo-bar-gateway.yaml\n")
		assert.Contains(t, out, "- foo-gateway.yaml\n")
		assert.NotContains(t, out, "README.md")
	})
}

func TestList_Empty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	out, err := runCLI(t, "list", "-o", dir)
	require.NoError(t, err)
	assert.Equal(t, "ℹ No template files found\n", out)

	out, err = runCLI(t, "list", "-s", "reviews", "-o", dir)
	require.NoError(t, err)
	assert.Equal(t, "ℹ No template files found for service: reviews\n", out)
}

func TestList_MissingOutputDirectory(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "list", "-o", filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Equal(t, "ℹ No template files found\n", out)
}

func TestList_IgnoresNamespaceAndDomain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := runCLI(t, "generate", "-s", "reviews", "-o", dir)
	require.NoError(t, err)

	out, err := runCLI(t, "list", "-s", "reviews", "-n", "bookinfo", "--domain", "example.org", "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "- reviews-gateway.yaml\n")
}
