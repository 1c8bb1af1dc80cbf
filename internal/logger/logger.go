package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

type contextKey string

// ContextKeyCoachEmail is the context key under which middleware stores the
// authenticated coach's email for log correlation.
const ContextKeyCoachEmail contextKey = "coach_email"

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the authenticated coach, if any
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if email, ok := ctx.Value(ContextKeyCoachEmail).(string); ok && email != "" {
		logger.Entry = logger.Entry.WithField("coach", email)
	} else {
		logger.Entry = logger.Entry.WithField("coach", "anonymous")
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches an error to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
