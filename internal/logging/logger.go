package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/wire"
	"github.com/spf13/viper"
)

// LogLevelEnv overrides the log level
const LogLevelEnv = "HIGHWIND_LOG_LEVEL"

var LoggingSet = wire.NewSet(
	NewLogger,
)

// NewLogger creates a logger from the viper settings. --debug lowers the
// level to debug and adds source locations.
func NewLogger(v *viper.Viper) *slog.Logger {
	level := ParseLevel(os.Getenv(LogLevelEnv))

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = shortPath(source.File)
				}
			}
			return a
		},
	}

	if v != nil && v.GetBool("debug") {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(val string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// shortPath keeps the last directory and file name
func shortPath(file string) string {
	dir, name := filepath.Split(file)
	return filepath.Join(filepath.Base(dir), name)
}
