// Package testutil provides shared test helpers, in particular a buffered
// slog handler so tests can assert on the log events the pipeline emits.
package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

// LogRecord represents a captured log record for testing
type LogRecord struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// recordBuffer is the shared store behind a handler and its WithAttrs clones
type recordBuffer struct {
	mu      sync.Mutex
	records []LogRecord
	t       *testing.T
}

// BufferedSlogHandler captures log records for testing
type BufferedSlogHandler struct {
	buf   *recordBuffer
	attrs []slog.Attr
}

// NewBufferedSlogHandler creates a new buffered handler for testing
func NewBufferedSlogHandler(t *testing.T) *BufferedSlogHandler {
	return &BufferedSlogHandler{
		buf: &recordBuffer{
			records: make([]LogRecord, 0),
			t:       t,
		},
	}
}

// NewTestLogger returns a logger backed by a buffered handler plus the
// handler itself for assertions
func NewTestLogger(t *testing.T) (*slog.Logger, *BufferedSlogHandler) {
	handler := NewBufferedSlogHandler(t)
	return slog.New(handler), handler
}

// Handle implements slog.Handler
func (h *BufferedSlogHandler) Handle(_ context.Context, r slog.Record) error {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()

	attrs := make(map[string]any)
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	h.buf.records = append(h.buf.records, LogRecord{
		Time:    r.Time,
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})

	// Also log to test output for debugging
	if h.buf.t != nil {
		h.buf.t.Logf("[%s] %s %v", r.Level, r.Message, attrs)
	}

	return nil
}

// Enabled implements slog.Handler; tests capture all levels
func (h *BufferedSlogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler. Clones share the record buffer so
// assertions see events from derived loggers too.
func (h *BufferedSlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &BufferedSlogHandler{buf: h.buf, attrs: merged}
}

// WithGroup implements slog.Handler
func (h *BufferedSlogHandler) WithGroup(_ string) slog.Handler {
	return h
}

// GetRecords returns a copy of all captured log records
func (h *BufferedSlogHandler) GetRecords() []LogRecord {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()

	records := make([]LogRecord, len(h.buf.records))
	copy(records, h.buf.records)
	return records
}

// GetRecordsByLevel returns log records filtered by level
func (h *BufferedSlogHandler) GetRecordsByLevel(level slog.Level) []LogRecord {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()

	var filtered []LogRecord
	for _, r := range h.buf.records {
		if r.Level == level {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ContainsMessage checks if any log record contains the given message
func (h *BufferedSlogHandler) ContainsMessage(message string) bool {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()

	for _, r := range h.buf.records {
		if strings.Contains(r.Message, message) {
			return true
		}
	}
	return false
}

// ContainsMessageAtLevel checks for a message substring at a specific level
func (h *BufferedSlogHandler) ContainsMessageAtLevel(level slog.Level, message string) bool {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()

	for _, r := range h.buf.records {
		if r.Level == level && strings.Contains(r.Message, message) {
			return true
		}
	}
	return false
}

// ContainsAttr checks if any log record contains the given attribute
func (h *BufferedSlogHandler) ContainsAttr(key string, value any) bool {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()

	for _, r := range h.buf.records {
		if val, ok := r.Attrs[key]; ok && val == value {
			return true
		}
	}
	return false
}

// Clear removes all captured records
func (h *BufferedSlogHandler) Clear() {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()
	h.buf.records = h.buf.records[:0]
}

// Count returns the number of captured records
func (h *BufferedSlogHandler) Count() int {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()
	return len(h.buf.records)
}
