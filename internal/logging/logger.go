package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/wire"
	"github.com/trebuchet-org/arbiter/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger with additional context
type Logger struct {
	*slog.Logger
}

var LoggingSet = wire.NewSet(
	NewLogger,
)

// LogFile is the rotated log written while the watch board owns the terminal
func LogFile(cfg *config.RuntimeConfig) string {
	return filepath.Join(cfg.DataDir, "logs", "arbiter.log")
}

// NewLogger creates a new logger based on runtime configuration
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	level := ParseLevel(os.Getenv("ARBITER_LOG_LEVEL"))
	if cfg.Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time for cleaner terminal output
			if a.Key == slog.TimeKey && !cfg.LogToFile {
				return slog.Attr{}
			}
			// Shorten source paths
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = shortPath(source.File)
				}
			}
			return a
		},
	}

	var out io.Writer = os.Stderr
	if cfg.LogToFile {
		out = &lumberjack.Logger{
			Filename:   LogFile(cfg),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
	}

	return slog.New(slog.NewTextHandler(out, opts))
}

// ParseLevel maps ARBITER_LOG_LEVEL values to slog levels, defaulting to info
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

// shortPath returns a shortened version of the file path
func shortPath(file string) string {
	// Try to make paths relative to project root
	if idx := strings.Index(file, "arbiter/"); idx != -1 {
		return file[idx+len("arbiter/"):]
	}
	// Otherwise, strip this module's directory
	_, f, _, _ := runtime.Caller(0)
	if idx := strings.LastIndex(f, "/"); idx != -1 {
		if idx2 := strings.LastIndex(file, f[:idx]); idx2 != -1 {
			return file[idx2+len(f[:idx])+1:]
		}
	}
	// Last resort: just the filename
	parts := strings.Split(file, "/")
	return parts[len(parts)-1]
}
