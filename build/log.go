// Package build provides the log-writer plumbing shared by every wallet-core
// subsystem: a rotating-capable io.Writer and a helper for minting one
// sub-logger per subsystem, following the same split the original daemon
// used between a stdout writer and a file writer.
package build

import (
	"io"
	"os"
	"sync"

	"github.com/decred/slog"
)

// LogWriter is the default writer used before a caller redirects it (e.g.
// to a rotating file writer) via SetOutput. It writes to stdout, matching the default
// (non filelog-tagged) behavior of a CLI tool run interactively.
type LogWriter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewLogWriter returns a LogWriter that writes to stdout until redirected.
func NewLogWriter() *LogWriter {
	return &LogWriter{out: os.Stdout}
}

// Write implements io.Writer.
func (w *LogWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(b)
}

// SetOutput redirects subsequent writes, e.g. to a rotating file handle
// opened by an embedding CLI. The core itself never opens files.
func (w *LogWriter) SetOutput(out io.Writer) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.out = out
}

// RotatingLogWriter multiplexes per-subsystem loggers onto a single
// underlying LogWriter, and lets an embedder swap it after the fact (e.g.
// once a log file path is known) without each subsystem re-fetching its
// logger.
type RotatingLogWriter struct {
	writer *LogWriter

	mu      sync.Mutex
	backend slog.Backend
	loggers map[string]slog.Logger
}

// NewRotatingLogWriter creates a RotatingLogWriter backed by stdout.
func NewRotatingLogWriter() *RotatingLogWriter {
	w := NewLogWriter()
	return &RotatingLogWriter{
		writer:  w,
		backend: slog.NewBackend(w),
		loggers: make(map[string]slog.Logger),
	}
}

// GenSubLogger creates a new slog.Logger for the given subsystem tag,
// registering it so future calls for the same tag return the same logger.
func (r *RotatingLogWriter) GenSubLogger(subsystem string) slog.Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.loggers[subsystem]; ok {
		return l
	}
	l := r.backend.Logger(subsystem)
	r.loggers[subsystem] = l
	return l
}

// RegisterSubLogger records a (possibly externally constructed) logger
// under the given subsystem tag.
func (r *RotatingLogWriter) RegisterSubLogger(subsystem string, logger slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loggers[subsystem] = logger
}

// SetLogLevel sets the verbosity of every currently-registered sub-logger.
func (r *RotatingLogWriter) SetLogLevel(level slog.Level) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.loggers {
		l.SetLevel(level)
	}
}

// SetOutput redirects the underlying writer, e.g. to a file opened by an
// embedding CLI.
func (r *RotatingLogWriter) SetOutput(out io.Writer) {
	r.writer.SetOutput(out)
}

// NewSubLogger returns a placeholder logger for subsystem that can be used
// before a root RotatingLogWriter exists (e.g. at package-level var init),
// and reattached to the real backend later via RotatingLogWriter.GenSubLogger
// plus the caller's own UseLogger hook.
func NewSubLogger(subsystem string, gen func(string) slog.Logger) slog.Logger {
	if gen != nil {
		return gen(subsystem)
	}
	return slog.Disabled
}
