// Package logging holds the process-wide diagnostic logger for regkit.
// Output is discarded until Init is called with Enabled set, so library
// consumers pay nothing unless they opt in.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// L is the global logger instance. It discards all output by default.
// Call Init to enable logging.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

var mu sync.Mutex

// Options configures logger initialization.
type Options struct {
	Enabled bool       // if false, all logging is discarded
	Output  io.Writer  // destination for log lines. Default: os.Stderr
	Level   slog.Level // minimum log level. Default: LevelDebug when enabled
}

// Init configures the diagnostic logger. Call it before issuing operations;
// it is safe to call again to turn logging back off.
func Init(opts Options) {
	mu.Lock()
	defer mu.Unlock()

	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := opts.Level
	if level == 0 {
		level = slog.LevelDebug
	}

	L = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }
