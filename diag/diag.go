// Package diag provides the slog-based diagnostic logging used when
// the codec recovers locally from an UnknownDeclaration (spec: decoder
// emits null, encoder emits nothing, both "log a diagnostic").
//
// The Flags/Config/RegisterFlags shape below is reproduced from the
// teacher corpus's own logging package (MacroPower-x's log/config.go,
// log/log.go): a cobra/pflag-registered level+format pair backing a
// stdlib log/slog handler, no external logging backend.
package diag

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
)

// Format is the log output format.
type Format string

const (
	FormatJSON   Format = "json"
	FormatLogfmt Format = "logfmt"
)

// Flags holds CLI flag names for diagnostic logging, allowing callers
// to customize flag names while keeping sensible defaults via
// NewConfig.
type Flags struct {
	Level  string
	Format string
}

// NewConfig creates a new Config embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f, Level: "info", Format: string(FormatLogfmt)}
}

// Config holds CLI flag values for diagnostic logging.
type Config struct {
	Level  string
	Format string
	Flags  Flags
}

// NewConfig returns a Config with the default flag names "log-level"
// and "log-format".
func NewConfig() *Config {
	return Flags{Level: "log-level", Format: "log-format"}.NewConfig()
}

// RegisterFlags adds logging flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, c.Level,
		fmt.Sprintf("log level, one of: %s", allLevels()))
	flags.StringVar(&c.Format, c.Flags.Format, c.Format,
		fmt.Sprintf("log format, one of: %s", allFormats()))
}

// NewHandler builds a slog.Handler writing to w per the configured
// level and format.
func (c *Config) NewHandler(w io.Writer) (slog.Handler, error) {
	lvl, err := parseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	fmtv, err := parseFormat(c.Format)
	if err != nil {
		return nil, err
	}
	return newHandler(w, lvl, fmtv), nil
}

func newHandler(w io.Writer, lvl slog.Level, f Format) slog.Handler {
	opts := &slog.HandlerOptions{Level: lvl}
	if f == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	}
	return 0, fmt.Errorf("diag: unknown log level %q", level)
}

func parseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if f == FormatJSON || f == FormatLogfmt {
		return f, nil
	}
	return "", fmt.Errorf("diag: unknown log format %q", format)
}

func allLevels() []string  { return []string{"error", "warn", "info", "debug"} }
func allFormats() []string { return []string{string(FormatJSON), string(FormatLogfmt)} }

var current = slog.Default()

// SetLogger replaces the package-level logger used for codec
// diagnostics. The CLI calls this once, during startup, after
// building a handler from Config.NewHandler.
func SetLogger(l *slog.Logger) {
	current = l
}

// Logger returns the current package-level logger.
func Logger() *slog.Logger {
	return current
}
