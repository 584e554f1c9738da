package logger

import (
	"time"

	"go.uber.org/zap"
)

// Timer measures one operation and logs its duration when stopped
type Timer struct {
	start     time.Time
	log       *zap.Logger
	operation string
}

// NewTimer starts timing operation against the given logger
func NewTimer(log *zap.Logger, operation string) *Timer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Timer{
		start:     time.Now(),
		log:       log,
		operation: operation,
	}
}

// Stop logs the elapsed time. Failed operations are logged at warn level.
func (t *Timer) Stop(err error, fields ...zap.Field) time.Duration {
	duration := time.Since(t.start)
	fields = append(fields,
		zap.String("operation", t.operation),
		zap.Duration("duration", duration),
	)
	if err != nil {
		t.log.Warn("Operation failed", append(fields, zap.Error(err))...)
		return duration
	}
	t.log.Debug("Operation timing", fields...)
	return duration
}
