// Package log builds [slog.Handler]s for the cjson command line tools.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

const (
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
	FormatText   = "text"
)

var ErrInvalidArgument = errors.New("invalid argument")

// CreateHandlerWithStrings creates a [slog.Handler] writing to w, from
// string representations of a level and a format.
//
// The text format falls back to logfmt when w is a file that is not a
// terminal.
func CreateHandlerWithStrings(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, err
	}

	f, err := GetFormat(format)
	if err != nil {
		return nil, err
	}

	if f == FormatText && !isTerminal(w) {
		f = FormatLogfmt
	}

	return CreateHandler(w, lvl, f), nil
}

// CreateHandler creates a [slog.Handler] for an already parsed level and
// format.
func CreateHandler(w io.Writer, level slog.Level, format string) slog.Handler {
	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case FormatLogfmt:
		return log.NewWithOptions(w, log.Options{
			Level:     log.Level(level),
			Formatter: log.LogfmtFormatter,
		})
	default:
		return log.NewWithOptions(w, log.Options{
			Level:           log.Level(level),
			Formatter:       log.TextFormatter,
			ReportTimestamp: true,
		})
	}
}

// GetLevel parses a log level name.
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	}

	return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalidArgument, level)
}

// GetFormat parses a log format name.
func GetFormat(format string) (string, error) {
	switch f := strings.ToLower(format); f {
	case FormatJSON, FormatLogfmt, FormatText:
		return f, nil
	case "":
		return FormatText, nil
	}

	return "", fmt.Errorf("%w: unknown log format %q", ErrInvalidArgument, format)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
