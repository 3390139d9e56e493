package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gridpath/gridpath/internal/app"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean telling the caller to exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridpath - shortest paths on a square grid with A* and Dijkstra.

Usage:
  gridpath [options] SCENARIO.hcl

Arguments:
  SCENARIO.hcl
    Path to a scenario file describing the board, start, end and barriers.

Options:
`)
		flagSet.PrintDefaults()
	}

	algoFlag := flagSet.String("algo", "", "Algorithm to run: 'astar', 'dijkstra' or 'both'. Defaults to the scenario's choice.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	renderFlag := flagSet.Bool("render", false, "Print the board while searching and after each run.")
	everyFlag := flagSet.Int("every", 1, "With -render, print a frame every N search steps. 0 prints only the final board.")
	framesFlag := flagSet.Int("frames", 0, "With -render, cap the frames printed per run. 0 is unlimited.")
	delayFlag := flagSet.Duration("delay", 0, "With -render, pause after each frame.")
	colorFlag := flagSet.Bool("color", false, "With -render, paint frames with ANSI colors.")
	timeoutFlag := flagSet.Duration("timeout", 0, "Abort a search that runs longer than this. 0 is disabled.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		slog.Debug("No scenario path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "expected exactly one scenario path"}
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
		ScenarioPath: flagSet.Arg(0),
		Algorithm:    strings.ToLower(*algoFlag),
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		Render:       *renderFlag,
		Every:        *everyFlag,
		Frames:       *framesFlag,
		Delay:        *delayFlag,
		Color:        *colorFlag,
		Timeout:      *timeoutFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
