package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const attemptIDKey ctxKey = "attemptID"

// InitLogger configures the process-wide slog logger writing to stdout
func InitLogger(cfg Config) {
	InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter configures the process-wide slog logger writing to w
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	slog.SetDefault(slog.New(cfg.Handler(w)))
}

// NewAttemptID creates the id that correlates every log line of one harvest attempt.
func NewAttemptID() string {
	return uuid.NewString()
}

// WithAttemptID returns a context carrying the attempt id.
func WithAttemptID(ctx context.Context, attemptID string) context.Context {
	return context.WithValue(ctx, attemptIDKey, attemptID)
}

// AttemptIDFromContext extracts the attempt id, if present.
func AttemptIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(attemptIDKey).(string)
	return id, ok && id != ""
}

// FromContext returns the default logger, tagged with attempt_id when the
// context carries one.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := AttemptIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyAttemptID, id)
	}
	return slog.Default()
}
