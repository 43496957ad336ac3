// Package logger holds the structured logger shared by veckit packages.
//
// The logger discards everything until either Init is called or one of the
// VECKIT_LOG_* environment variables is set, in which case debug records go
// to stderr as text.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Environment toggles, read once at startup.
const (
	EnvGrowth = "VECKIT_LOG_GROWTH" // relocation and shift strategy of vec
	EnvAlloc  = "VECKIT_LOG_ALLOC"  // pool and mapping events of vec/alloc
)

var (
	// L is the global logger instance. It's initialized to discard all output by default.
	L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	// Growth enables vec relocation logging.
	Growth = os.Getenv(EnvGrowth) != ""

	// Alloc enables allocator logging.
	Alloc = os.Getenv(EnvAlloc) != ""
)

func init() {
	if Growth || Alloc {
		L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Writer  io.Writer  // Destination. Default: os.Stderr
	Level   slog.Level // Minimum log level. Default: LevelInfo when enabled
	JSON    bool       // JSON records instead of text

	// Growth and Alloc switch on the corresponding debug channels in
	// addition to whatever the environment enabled.
	Growth bool
	Alloc  bool
}

// Init configures logging. Call from main() before any log calls.
// If opts.Enabled is false, all log output is discarded.
func Init(opts Options) {
	Growth = Growth || opts.Growth
	Alloc = Alloc || opts.Alloc

	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := opts.Level
	if level == 0 && !(Growth || Alloc) {
		level = slog.LevelInfo
	}
	if Growth || Alloc {
		level = min(level, slog.LevelDebug)
	}

	hopts := &slog.HandlerOptions{Level: level}
	if opts.JSON {
		L = slog.New(slog.NewJSONHandler(w, hopts))
		return
	}
	L = slog.New(slog.NewTextHandler(w, hopts))
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
