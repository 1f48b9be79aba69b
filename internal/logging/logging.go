// Package logging builds the debug logger shared by take's packages.
//
// The terminal belongs to the selector while it runs, so log output never
// goes to stderr. With debugging enabled it is appended to a file under the
// XDG state directory instead.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"charm.land/log/v2"
	"github.com/adrg/xdg"
)

// DefaultFile is the debug log location relative to the XDG state directory.
const DefaultFile = "take/debug.log"

// New returns a logger writing to w. A nil writer discards everything.
func New(w io.Writer, level log.Level) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "take",
	})
	logger.SetLevel(level)
	return logger
}

// Discard returns a logger that drops all output.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}

// Path resolves the debug log path. An empty override selects the default
// location in the XDG state directory.
func Path(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	path, err := xdg.StateFile(DefaultFile)
	if err != nil {
		return "", fmt.Errorf("could not resolve debug log path: %w", err)
	}
	return path, nil
}

// OpenFile opens (appending) the debug log at path and returns a debug level
// logger writing to it together with the file to close on exit.
func OpenFile(path string) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("could not create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open debug log: %w", err)
	}
	return New(f, log.DebugLevel), f, nil
}
