// Package yaml loads override files written in YAML into the agnostic
// override model. This is the format the training tasks ship their override
// files in.
package yaml

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/traingrid/internal/config"
	"github.com/vk/traingrid/internal/ctxlog"
	"github.com/vk/traingrid/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Loader implements config.Loader for YAML override files.
type Loader struct{}

// NewLoader creates a YAML override loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .yaml/.yml file reachable from the given paths and merges
// them into one override tree, later files winning.
func (l *Loader) Load(ctx context.Context, paths ...string) (config.Overrides, error) {
	logger := ctxlog.FromContext(ctx)
	merged := config.Overrides{}

	for _, path := range paths {
		files, err := fsutil.ExpandPath(path, ".yaml", ".yml")
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			data, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("failed to read override file %q: %w", file, err)
			}

			var raw map[string]any
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return nil, fmt.Errorf("failed to parse %q: %w", file, err)
			}

			merged = config.Merge(merged, raw)
			logger.Debug("Override file loaded.", "path", file, "top_level_keys", len(raw))
		}
	}

	return merged, nil
}
