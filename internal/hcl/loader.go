package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/traingrid/internal/config"
	"github.com/vk/traingrid/internal/ctxlog"
	"github.com/vk/traingrid/internal/fsutil"
)

// Loader implements config.Loader for HCL override files.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates an HCL override loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads every .hcl file reachable from the given paths and merges them
// into one override tree, later files winning. Attribute values are
// evaluated without a variable scope; only literal expressions are allowed.
func (l *Loader) Load(ctx context.Context, paths ...string) (config.Overrides, error) {
	logger := ctxlog.FromContext(ctx)
	merged := config.Overrides{}

	for _, path := range paths {
		files, err := fsutil.ExpandPath(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			raw, err := l.loadFile(file)
			if err != nil {
				return nil, err
			}
			merged = config.Merge(merged, raw)
			logger.Debug("Override file loaded.", "path", file, "top_level_keys", len(raw))
		}
	}

	return merged, nil
}

func (l *Loader) loadFile(path string) (map[string]any, error) {
	f, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %q: %s", path, diags.Error())
	}

	attrs, diags := f.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read attributes of %q: %s", path, diags.Error())
	}

	raw := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate attribute %q in %q: %s", name, path, diags.Error())
		}
		native, err := ctyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %q in %q: %w", name, path, err)
		}
		raw[name] = native
	}
	return raw, nil
}
