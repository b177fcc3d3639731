// Package testlog provides a logger that writes to the unit test log.
package testlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/log"
)

// Testing is the subset of testing.TB the logger needs.
type Testing interface {
	Logf(format string, args ...any)
	Helper()
	Cleanup(func())
}

// lineWriter forwards each complete log line to t.Logf.
// Lines written after the test finished are dropped, since t.Logf panics then.
type lineWriter struct {
	mu   sync.Mutex
	t    Testing
	buf  bytes.Buffer
	done bool
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.done {
		return len(p), nil
	}
	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// partial line, keep it for the next write
			w.buf.WriteString(line)
			break
		}
		w.t.Helper()
		w.t.Logf("%s", strings.TrimSuffix(line, "\n"))
	}
	return len(p), nil
}

func (w *lineWriter) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.done = true
}

// Logger returns a logger that logs to the unit test log of t, in terminal format.
func Logger(t Testing, level slog.Level) log.Logger {
	w := &lineWriter{t: t}
	t.Cleanup(w.stop)
	return log.NewLogger(log.NewTerminalHandlerWithLevel(w, level, false))
}

// CapturingHandler records every log record, for tests that assert on log output.
type CapturingHandler struct {
	mu      *sync.Mutex
	records *[]slog.Record
	attrs   []slog.Attr
	level   slog.Level
}

func NewCapturingHandler(level slog.Level) *CapturingHandler {
	return &CapturingHandler{mu: new(sync.Mutex), records: new([]slog.Record), level: level}
}

// CaptureLogger returns a logger that records into the returned handler.
func CaptureLogger(level slog.Level) (log.Logger, *CapturingHandler) {
	h := NewCapturingHandler(level)
	return log.NewLogger(h), h
}

func (c *CapturingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level
}

func (c *CapturingHandler) Handle(_ context.Context, r slog.Record) error {
	r = r.Clone()
	r.AddAttrs(c.attrs...)
	c.mu.Lock()
	defer c.mu.Unlock()
	*c.records = append(*c.records, r)
	return nil
}

func (c *CapturingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CapturingHandler{
		mu:      c.mu,
		records: c.records,
		attrs:   append(append([]slog.Attr{}, c.attrs...), attrs...),
		level:   c.level,
	}
}

func (c *CapturingHandler) WithGroup(name string) slog.Handler {
	return c
}

// FindLog returns the first record at the given level whose message contains msg, or nil.
func (c *CapturingHandler) FindLog(level slog.Level, msg string) *slog.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range *c.records {
		r := (*c.records)[i]
		if r.Level == level && strings.Contains(r.Message, msg) {
			return &r
		}
	}
	return nil
}

// AttrValue returns the value of the named attribute on a record, or nil.
func AttrValue(r *slog.Record, key string) any {
	var out any
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			out = a.Value.Any()
			return false
		}
		return true
	})
	return out
}
