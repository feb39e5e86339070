package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// FromContext returns the logger carried by ctx, falling back to the package
// default when none is attached.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithSession returns a copy of ctx whose logger is pre-tagged with the
// session id. Handlers retrieving the logger via FromContext then emit the
// id on every entry without re-attaching it.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(FieldSession, sessionID))
}
