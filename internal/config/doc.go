// Package config defines the format-agnostic override model consumed by the
// resolution pipeline, along with the Loader interface that format-specific
// packages (yaml, hcl) implement. The strict tree walkers only ever see the
// agnostic Overrides mapping, never a parsed file.
package config
