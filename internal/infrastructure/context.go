package infrastructure

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// contextKey is a type for context keys
type contextKey string

// runIDContextKey is the key for storing the run ID in context
const runIDContextKey contextKey = "run_id"

// NewRunID creates a new unique run ID using UUID v4
func NewRunID() string {
	return uuid.New().String()
}

// WithRunID returns a context carrying the given run ID
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDContextKey, runID)
}

// ContextWithRunID returns a context carrying a freshly generated run ID
func ContextWithRunID(ctx context.Context) context.Context {
	return WithRunID(ctx, NewRunID())
}

// RunIDFrom extracts the run ID from context, or "" when absent
func RunIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(runIDContextKey).(string); ok {
		return id
	}
	return ""
}

// WithComponent creates a logger with a component field
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With("component", component)
}

// WithError creates a logger with an error field
func WithError(logger *slog.Logger, err error) *slog.Logger {
	if err == nil {
		return logger
	}
	return logger.With("error", err.Error())
}
