// Package applog is the debug log shared by the engine and the CLI.
// Output goes to a file given with --log; without it every call is a no-op
// so stdout stays reserved for palettes and exports.
package applog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger writes leveled key/value lines.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	closer  io.Closer
	enabled bool
}

// Log is the process-wide logger.
var Log = &Logger{}

// Init opens path for appending and routes Log to it. An empty path
// disables logging.
func Init(path string) error {
	if path == "" {
		Log.set(nil, nil)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	Log.set(f, f)
	Log.Info("logger initialized", "path", path)
	return nil
}

// SetOutput routes Log to w, or disables it when w is nil. It returns a
// function restoring the previous destination.
func SetOutput(w io.Writer) (restore func()) {
	Log.mu.Lock()
	prevOut, prevCloser, prevEnabled := Log.out, Log.closer, Log.enabled
	Log.mu.Unlock()

	Log.set(w, nil)
	return func() {
		Log.mu.Lock()
		Log.out, Log.closer, Log.enabled = prevOut, prevCloser, prevEnabled
		Log.mu.Unlock()
	}
}

func (l *Logger) set(w io.Writer, c io.Closer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.closer = c
	l.enabled = w != nil
}

// Close closes the log file, if one was opened by Init.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = false
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	l.out = nil
	return err
}

// Enabled reports whether lines are being written.
func (l *Logger) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// Writer returns the log destination, or io.Discard when disabled.
func (l *Logger) Writer() io.Writer {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return io.Discard
	}
	return l.out
}

func (l *Logger) log(level, msg string, keyvals ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", time.Now().Format("15:04:05.000"), level, msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	if len(keyvals)%2 == 1 {
		fmt.Fprintf(&b, " %v=?", keyvals[len(keyvals)-1])
	}
	b.WriteByte('\n')

	io.WriteString(l.out, b.String())
	if f, ok := l.out.(*os.File); ok {
		f.Sync()
	}
}

func (l *Logger) Debug(msg string, keyvals ...any) { l.log("DEBUG", msg, keyvals...) }
func (l *Logger) Info(msg string, keyvals ...any)  { l.log("INFO", msg, keyvals...) }
func (l *Logger) Warn(msg string, keyvals ...any)  { l.log("WARN", msg, keyvals...) }
func (l *Logger) Error(msg string, keyvals ...any) { l.log("ERROR", msg, keyvals...) }

func (l *Logger) Debugf(format string, args ...any) { l.log("DEBUG", fmt.Sprintf(format, args...)) }
func (l *Logger) Infof(format string, args ...any)  { l.log("INFO", fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...any)  { l.log("WARN", fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...any) { l.log("ERROR", fmt.Sprintf(format, args...)) }

// Timed logs start and completion of an operation:
//
//	defer applog.Log.Timed("generate")()
func (l *Logger) Timed(operation string) func() {
	if !l.Enabled() {
		return func() {}
	}
	start := time.Now()
	l.Debug(operation, "status", "started")
	return func() {
		l.Debug(operation, "status", "completed", "duration", time.Since(start))
	}
}
