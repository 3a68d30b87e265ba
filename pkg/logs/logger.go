package logs

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultFile is used when logging is enabled without a file name.
const DefaultFile = "ste.log"

// Logger writes JSON lines with a timestamp and event fields. A nil or
// disabled Logger accepts every call and writes nothing.
type Logger struct {
	mu      sync.Mutex
	w       *bufio.Writer
	c       io.Closer
	enabled bool
	now     func() time.Time
}

// Open appends to the file at path, creating it if needed.
func Open(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return NewWriter(f), nil
}

// NewWriter returns an enabled logger writing to w. If w is an io.Closer,
// Close closes it.
func NewWriter(w io.Writer) *Logger {
	l := &Logger{w: bufio.NewWriter(w), enabled: true, now: time.Now}
	if c, ok := w.(io.Closer); ok {
		l.c = c
	}
	return l
}

// Environment variables read by NewFromEnv.
const (
	EnvEnable = "STE_LOG"
	EnvFile   = "STE_LOG_FILE"
)

// NewFromEnv returns a logger configured from the process environment.
func NewFromEnv() *Logger {
	return fromLookup(os.Getenv)
}

// fromLookup enables logging when EnvFile names a file or EnvEnable is
// set to anything but "", "0" or "false". Without a file name it appends
// to DefaultFile in the working directory. A file that cannot be opened
// leaves logging disabled.
func fromLookup(getenv func(string) string) *Logger {
	path := getenv(EnvFile)
	if path == "" {
		switch getenv(EnvEnable) {
		case "", "0", "false":
			return &Logger{}
		}
		path = filepath.Join(".", DefaultFile)
	}
	l, err := Open(path)
	if err != nil {
		return &Logger{}
	}
	return l
}

// Enabled reports whether events are written.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Close flushes and closes the underlying writer if enabled.
func (l *Logger) Close() {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.w.Flush()
	if l.c != nil {
		_ = l.c.Close()
	}
	l.enabled = false
}

// Event writes a JSON line with the event name and fields.
// Common fields: file, key, rune, modifiers, name, row, col, lines, error.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.Enabled() {
		return
	}
	rec := map[string]any{
		"time":  l.now().Format(time.RFC3339Nano),
		"event": event,
	}
	for k, v := range fields {
		rec[k] = v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	enc := json.NewEncoder(l.w)
	_ = enc.Encode(rec)
	_ = l.w.Flush()
}
