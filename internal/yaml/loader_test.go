package yaml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_ParsesNestedOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "exp.yaml", `
log_dir: /tmp/exp-1
seed: 3
opt:
  learning_rate: 5.0e-5
`)

	got, err := NewLoader().Load(context.Background(), file)
	require.NoError(t, err)

	require.Equal(t, "/tmp/exp-1", got["log_dir"])
	require.Equal(t, 3, got["seed"])
	opt, ok := got["opt"].(map[string]any)
	require.True(t, ok, "nested mapping must decode to map[string]any")
	require.Equal(t, 5e-5, opt["learning_rate"])
}

func TestLoad_MergesDirectoryInLexicalOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "10-base.yaml", "seed: 1\nopt:\n  momentum: 0.9\n")
	writeFile(t, dir, "20-exp.yaml", "seed: 2\nopt:\n  learning_rate: 1.0e-3\n")

	got, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	require.Equal(t, 2, got["seed"], "the later file wins")
	opt := got["opt"].(map[string]any)
	require.Equal(t, 0.9, opt["momentum"])
	require.Equal(t, 1e-3, opt["learning_rate"])
}

func TestLoad_FailsOnMalformedYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "bad.yaml", "seed: [unclosed\n")

	_, err := NewLoader().Load(context.Background(), file)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_FailsOnMissingPath(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
