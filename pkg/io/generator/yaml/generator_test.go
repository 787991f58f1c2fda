package yamlgenerator_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/devantler-tech/templ-gen/pkg/io/generator"
	yamlgenerator "github.com/devantler-tech/templ-gen/pkg/io/generator/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFilePermissions = 0o600

var errMarshal = errors.New("marshal failed")

type failingMarshaller struct{}

func (failingMarshaller) Marshal(map[string]any) (string, error) { return "", errMarshal }

func (failingMarshaller) Unmarshal([]byte, *map[string]any) error { return nil }

func (failingMarshaller) UnmarshalString(string, *map[string]any) error { return nil }

type standardGeneratorTestCase struct {
	name        string
	force       bool
	setupOutput func(*testing.T) (outputPath string, verifyFile bool)
	wantFile    string
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	model := map[string]any{"kind": "Gateway", "metadata": map[string]any{"name": "reviews-gateway"}}
	want := "kind: Gateway\nmetadata:\n  name: reviews-gateway\n"

	tests := []standardGeneratorTestCase{
		{
			name:        "without file",
			setupOutput: func(*testing.T) (string, bool) { return "", false },
		},
		{
			name: "with file in missing directory",
			setupOutput: func(t *testing.T) (string, bool) {
				t.Helper()

				return filepath.Join(t.TempDir(), "templ-gen", "reviews-gateway.yaml"), true
			},
			wantFile: want,
		},
		{
			name:  "with force overwrite",
			force: true,
			setupOutput: func(t *testing.T) (string, bool) {
				t.Helper()

				outputPath := filepath.Join(t.TempDir(), "reviews-gateway.yaml")
				err := os.WriteFile(outputPath, []byte("existing content"), testFilePermissions)
				require.NoError(t, err)

				return outputPath, true
			},
			wantFile: want,
		},
		{
			name: "existing file kept without force",
			setupOutput: func(t *testing.T) (string, bool) {
				t.Helper()

				outputPath := filepath.Join(t.TempDir(), "reviews-gateway.yaml")
				err := os.WriteFile(outputPath, []byte("existing content"), testFilePermissions)
				require.NoError(t, err)

				return outputPath, true
			},
			wantFile: "existing content",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			gen := yamlgenerator.NewGenerator[map[string]any]()
			output, verifyFile := testCase.setupOutput(t)

			result, err := gen.Generate(model, generator.Options{Output: output, Force: testCase.force})

			require.NoError(t, err)
			assert.Equal(t, want, result)

			if verifyFile {
				//nolint:gosec // G304: path is created by the test (temp directory).
				content, err := os.ReadFile(output)
				require.NoError(t, err)
				assert.Equal(t, testCase.wantFile, string(content))
			}
		})
	}
}

func TestGenerateWithEmptyModel(t *testing.T) {
	t.Parallel()

	gen := yamlgenerator.NewGenerator[map[string]any]()

	result, err := gen.Generate(map[string]any{}, generator.Options{})

	require.NoError(t, err)
	assert.Equal(t, "{}\n", result)
}

func TestGenerateMarshalError(t *testing.T) {
	t.Parallel()

	gen := yamlgenerator.NewGeneratorWithMarshaller[map[string]any](failingMarshaller{})

	_, err := gen.Generate(map[string]any{}, generator.Options{})

	require.ErrorIs(t, err, errMarshal)
	assert.ErrorContains(t, err, "marshal model")
}

func TestGenerateWriteError(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "templ-gen")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), testFilePermissions))

	gen := yamlgenerator.NewGenerator[map[string]any]()

	_, err := gen.Generate(
		map[string]any{"kind": "Gateway"},
		generator.Options{Output: filepath.Join(blocker, "x.yaml"), Force: true},
	)

	require.Error(t, err)
	assert.ErrorContains(t, err, "write model")
}
