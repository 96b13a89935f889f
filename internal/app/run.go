package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vk/traingrid/internal/ctxlog"
)

// Run executes the resolution pipeline: resolve the tree, report residual
// Missing fields, and render the result as JSON to the output writer.
func (a *App) Run(ctx context.Context) error {
	runID := uuid.NewString()
	logger := a.logger.With("run_id", runID)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Resolution run started.", "overrides_path", a.config.OverridesPath)

	root, err := a.resolve(ctx)
	if err != nil {
		return err
	}

	missing := MissingPaths(root)
	for _, path := range missing {
		logger.Warn("Required field never supplied.", "path", path)
	}
	if a.config.RequireComplete && len(missing) > 0 {
		return fmt.Errorf("configuration incomplete: %d required field(s) missing: %s",
			len(missing), strings.Join(missing, ", "))
	}

	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root.ToMap()); err != nil {
		return fmt.Errorf("failed to render resolved configuration: %w", err)
	}

	logger.Info("Configuration resolved.", "missing_fields", len(missing))
	return nil
}
