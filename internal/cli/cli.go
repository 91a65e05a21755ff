// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/electra/internal/app"
	"github.com/specialistvlad/electra/internal/config"
	"github.com/specialistvlad/electra/internal/geom"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("electra", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Electra - wire and cell layouts on a discrete grid.

Usage:
  electra [options] [LAYOUT_PATH]

Arguments:
  LAYOUT_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	layoutFlag := flagSet.String("layout", "", "Path to the layout file or directory.")
	lFlag := flagSet.String("l", "", "Path to the layout file or directory (shorthand).")
	restoreFlag := flagSet.String("restore", "", "Snapshot directory to load before applying the layout.")
	snapshotFlag := flagSet.String("snapshot", "", "Directory to write a snapshot of the resulting layout to.")
	exportFlag := flagSet.String("export", "", "File to write the canonical HCL layout to.")
	wireFlag := flagSet.String("wire", "", "Print the wire with the given endpoints, written as 'x1,y1:x2,y2'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *layoutFlag != "" {
		path = *layoutFlag
	} else if *lFlag != "" {
		path = *lFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Layout path determined.", "path", path)

	if path == "" && *restoreFlag == "" {
		slog.Debug("No layout path or snapshot provided, printing usage and exiting.")
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

	var query *app.WireQuery
	if *wireFlag != "" {
		q, err := parseWireQuery(*wireFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid -wire: %v", err)}
		}
		query = q
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		LayoutPath:  path,
		RestoreDir:  *restoreFlag,
		SnapshotDir: *snapshotFlag,
		ExportPath:  *exportFlag,
		Wire:        query,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// parseWireQuery parses "x1,y1:x2,y2".
func parseWireQuery(s string) (*app.WireQuery, error) {
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("%q: expected 'x1,y1:x2,y2'", s)
	}
	start, err := geom.ParsePoint[config.Coord](from)
	if err != nil {
		return nil, err
	}
	end, err := geom.ParsePoint[config.Coord](to)
	if err != nil {
		return nil, err
	}
	return &app.WireQuery{Start: start, End: end}, nil
}
