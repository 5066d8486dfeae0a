package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithLayoutMode creates a child logger with a layout_mode field
func WithLayoutMode(ctx context.Context, mode string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("layout_mode", mode).Logger()
	return WithContext(ctx, childLogger)
}

// WithSession creates a child logger with a session field, so lines from one
// interactive run can be told apart in a shared log file.
func WithSession(ctx context.Context, id string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("session", id).Logger()
	return WithContext(ctx, childLogger)
}
