// Package logging provides a correlation-ID-carrying structured logger,
// threading a per-scan correlation ID through every log line emitted
// during that scan.
package logging

import (
	"context"

	"github.com/sirupsen/logrus"
)

type correlationIDKey struct{}

// WithCorrelationID returns a context carrying cid for downstream logging.
func WithCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}

// CorrelationID extracts the correlation ID from ctx, or "" if none is set.
func CorrelationID(ctx context.Context) string {
	if v, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return v
	}
	return ""
}

// New builds a root logrus.Logger emitting structured JSON, with the
// requested level (falling back to Info on an unrecognized level string).
func New(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "timestamp",
			logrus.FieldKeyMsg:  "message",
		},
	})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// Scoped returns an entry pre-populated with the correlation ID found on
// ctx (if any) plus any caller-supplied fields, so every call site at a
// given scan's scope logs with the same correlation_id field.
func Scoped(ctx context.Context, logger *logrus.Logger, fields logrus.Fields) *logrus.Entry {
	merged := logrus.Fields{}
	if cid := CorrelationID(ctx); cid != "" {
		merged["correlation_id"] = cid
	}
	for k, v := range fields {
		merged[k] = v
	}
	return logger.WithFields(merged)
}
