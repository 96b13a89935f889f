package hcl

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

func TestLoad_ParsesNestedObjectOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "exp.hcl", `
log_dir = "/tmp/exp-1"
seed    = 3
device  = "cpu"
opt = {
  learning_rate = 5e-5
}
algo = {
  tb = {
    variant = "SubTB"
  }
}
`)

	got, err := NewLoader().Load(context.Background(), file)
	require.NoError(t, err)

	require.Equal(t, "/tmp/exp-1", got["log_dir"])
	require.Equal(t, int64(3), got["seed"], "whole numbers decode as int64")
	require.Equal(t, "cpu", got["device"])

	opt, ok := got["opt"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, 5e-5, opt["learning_rate"])

	algo := got["algo"].(map[string]any)
	tb := algo["tb"].(map[string]any)
	require.Equal(t, "SubTB", tb["variant"])
}

func TestLoad_SupportsListsAndBools(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "cond.hcl", `
cond = {
  temperature_dist_params = [0.5, 32.0]
}
store_all_checkpoints = true
`)

	got, err := NewLoader().Load(context.Background(), file)
	require.NoError(t, err)

	require.Equal(t, true, got["store_all_checkpoints"])
	cond := got["cond"].(map[string]any)
	require.Equal(t, []any{0.5, int64(32)}, cond["temperature_dist_params"])
}

func TestLoad_MergesFilesLaterWins(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "10-base.hcl", "seed = 1\nopt = { momentum = 0.9 }\n")
	writeFile(t, dir, "20-exp.hcl", "seed = 2\nopt = { learning_rate = 1e-3 }\n")

	got, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	require.Equal(t, int64(2), got["seed"])
	opt := got["opt"].(map[string]any)
	require.Equal(t, 0.9, opt["momentum"])
	require.Equal(t, 1e-3, opt["learning_rate"])
}

func TestLoad_FailsOnSyntaxError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "bad.hcl", "opt = {\n")

	_, err := NewLoader().Load(context.Background(), file)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}
