package app

import "fmt"

// Override file formats accepted by the resolver. FormatAuto picks per file
// extension.
const (
	FormatAuto = "auto"
	FormatYAML = "yaml"
	FormatHCL  = "hcl"
)

// Config holds all the settings an App instance needs to run.
type Config struct {
	OverridesPath string // override file or directory; empty means defaults only
	Format        string // auto, yaml, or hcl

	LogFormat       string
	LogLevel        string
	RequireComplete bool // fail when any required field is still unset
}

// NewConfig validates the raw settings and returns a usable Config.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Format {
	case "":
		cfg.Format = FormatAuto
	case FormatAuto, FormatYAML, FormatHCL:
	default:
		return nil, fmt.Errorf("invalid overrides format %q: must be %q, %q, or %q", cfg.Format, FormatAuto, FormatYAML, FormatHCL)
	}

	return &cfg, nil
}
