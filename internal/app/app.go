package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/traingrid/internal/config"
	"github.com/vk/traingrid/internal/hcl"
	"github.com/vk/traingrid/internal/yaml"
)

// App encapsulates the resolution pipeline's dependencies and lifecycle.
// Resolved output is written to outW; logs go to logW so the rendered
// configuration stays machine-readable.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW, logW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
	}
}

// loaderFor picks the override loader for a path based on the configured
// format, falling back to the file extension in auto mode. Directories
// default to YAML, the format the training tasks ship overrides in.
func (a *App) loaderFor(path string) (config.Loader, error) {
	format := a.config.Format
	if format == FormatAuto {
		switch {
		case strings.HasSuffix(path, ".hcl"):
			format = FormatHCL
		default:
			format = FormatYAML
		}
	}

	switch format {
	case FormatYAML:
		return yaml.NewLoader(), nil
	case FormatHCL:
		return hcl.NewLoader(), nil
	default:
		return nil, fmt.Errorf("no loader registered for format %q", format)
	}
}
