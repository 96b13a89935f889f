package app

import (
	"context"
	"fmt"

	"github.com/vk/traingrid/internal/config"
	"github.com/vk/traingrid/internal/ctxlog"
	"github.com/vk/traingrid/internal/schema"
	"github.com/vk/traingrid/internal/strict"
)

// resolve builds the default training config tree and applies the override
// files named by the app configuration. On any error the partially mutated
// tree is discarded.
func (a *App) resolve(ctx context.Context) (*strict.Node, error) {
	logger := ctxlog.FromContext(ctx)

	overrides := config.Overrides{}
	if a.config.OverridesPath != "" {
		loader, err := a.loaderFor(a.config.OverridesPath)
		if err != nil {
			return nil, err
		}
		overrides, err = loader.Load(ctx, a.config.OverridesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}
	logger.Debug("Overrides collected.", "top_level_keys", len(overrides))

	root := schema.Default()
	if _, err := strict.Override(root, overrides); err != nil {
		return nil, fmt.Errorf("failed to apply overrides: %w", err)
	}

	return root, nil
}

// MissingPaths walks a resolved tree depth-first and returns the dotted
// paths of every leaf still holding the Missing sentinel. The resolver only
// reports these; whether they are fatal is the caller's decision.
func MissingPaths(n *strict.Node) []string {
	var out []string
	var walk func(prefix string, n *strict.Node)
	walk = func(prefix string, n *strict.Node) {
		for _, f := range n.Schema().Fields() {
			path := f.Name
			if prefix != "" {
				path = prefix + "." + f.Name
			}
			v := n.MustGet(f.Name)
			if sub, ok := v.(*strict.Node); ok {
				walk(path, sub)
				continue
			}
			if strict.IsMissing(v) {
				out = append(out, path)
			}
		}
	}
	walk("", n)
	return out
}
