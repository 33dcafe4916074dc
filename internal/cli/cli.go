package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/renderpipe/renderconf/internal/app"
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
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("renderconf", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
renderconf - Validates render-submission settings against the RenderMan
integration's configuration schema.

Usage:
  renderconf [options] [SETTINGS_PATH]

Arguments:
  SETTINGS_PATH
    Path to a single .hcl settings file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	settingsFlag := flagSet.String("settings", "", "Path to the settings file or directory.")
	sFlag := flagSet.String("s", "", "Path to the settings file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	printMetadataFlag := flagSet.Bool("print-metadata", false, "Print the assembled render metadata after validation.")
	nodeFlag := flagSet.String("node", "", "Path to a render-node parameter snapshot (.hcl). Prints the node's output files and AOVs.")
	artistFlag := flagSet.String("artist", "", "Artist id recorded alongside the render metadata.")
	framesFlag := flagSet.String("frames", "", "Frame range, e.g. '1001-1100'. Prints the smart task list.")
	taskSizeFlag := flagSet.Int("task-size", 1, "Frames per farm task when computing the smart task list.")
	postTaskFlag := flagSet.Bool("post-task", false, "Run the post-task denoise renaming for a completed task.")
	outputDirFlag := flagSet.String("output-dir", "", "Task output directory for the post-task run.")
	outputFileFlag := flagSet.String("output-file", "", "Task output filename pattern for the post-task run.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *settingsFlag != "" {
		path = *settingsFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Settings path determined.", "path", path)

	if path == "" {
		slog.Debug("No settings path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
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
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SettingsPath:  path,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		PrintMetadata: *printMetadataFlag,
		NodePath:      *nodeFlag,
		Artist:        *artistFlag,
		FrameRange:    *framesFlag,
		TaskSize:      *taskSizeFlag,
		PostTask:      *postTaskFlag,
		OutputDir:     *outputDirFlag,
		OutputFile:    *outputFileFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
