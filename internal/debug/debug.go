// Package debug provides the process-wide debug logger.
//
// Debug output is off by default and is switched on by the --debug flag.
// Messages go to stderr through a charmbracelet/log logger so the output can
// be rendered as text, JSON or logfmt.
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Supported log formats.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
)

var (
	enabled   bool
	enabledMu sync.RWMutex

	logger = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "dotool",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.InfoLevel,
	})
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	enabledMu.Lock()
	defer enabledMu.Unlock()
	enabled = enable
	if enable {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	enabledMu.RLock()
	defer enabledMu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	if disable {
		logger.SetColorProfile(termenv.Ascii)
		return
	}
	logger.SetColorProfile(termenv.EnvColorProfile())
}

// SetFormat selects the log formatter. Valid values are "text", "json" and "logfmt".
func SetFormat(format string) error {
	switch format {
	case "", FormatText:
		logger.SetFormatter(log.TextFormatter)
	case FormatJSON:
		logger.SetFormatter(log.JSONFormatter)
	case FormatLogfmt:
		logger.SetFormatter(log.LogfmtFormatter)
	default:
		return fmt.Errorf("unknown log format %q (want text, json or logfmt)", format)
	}
	return nil
}

// SetOutput redirects debug output. Used by tests and by the CLI when stderr is captured.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Logger returns the underlying logger for callers that want structured key/value pairs.
func Logger() *log.Logger {
	return logger
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...any) {
	if !IsEnabled() {
		return
	}
	logger.Debug(fmt.Sprintf(format, args...))
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	logger.Debug(fmt.Sprintf("=== %s ===", section))
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value any) {
	if !IsEnabled() {
		return
	}
	logger.Debug(key, "value", value)
}

// DebugJSON prints structured data as JSON for debugging
func DebugJSON(key string, v any) {
	if !IsEnabled() {
		return
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		Debug("Failed to marshal %s to JSON: %v", key, err)
		return
	}
	logger.Debug(key + ":\n" + string(jsonBytes))
}
