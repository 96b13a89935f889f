package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/traingrid/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("traingrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
TrainGrid - Strict training-configuration resolver.

Resolves the training configuration from its schema defaults plus optional
override files, reports required fields that were never supplied, and prints
the resolved tree as JSON.

Usage:
  traingrid [options] [OVERRIDES_PATH]

Arguments:
  OVERRIDES_PATH
    Path to an override file (.yaml, .yml, or .hcl) or a directory of them.

Options:
`)
		flagSet.PrintDefaults()
	}

	overridesFlag := flagSet.String("overrides", "", "Path to the override file or directory.")
	oFlag := flagSet.String("o", "", "Path to the override file or directory (shorthand).")
	formatFlag := flagSet.String("format", "auto", "Override file format. Options: 'auto', 'yaml', or 'hcl'.")
	requireCompleteFlag := flagSet.Bool("require-complete", false, "Fail when any required field is still unset after overrides.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *overridesFlag != "" {
		path = *overridesFlag
	} else if *oFlag != "" {
		path = *oFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		OverridesPath:   path,
		Format:          strings.ToLower(*formatFlag),
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		RequireComplete: *requireCompleteFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
