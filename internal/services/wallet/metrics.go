package wallet

import (
	"time"

	"go.uber.org/zap"
)

// MetricsCollector defines the interface for collecting adjustment metrics
type MetricsCollector interface {
	RecordOperationDuration(operation string, duration time.Duration)
	RecordOperationResult(operation, result string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordOperationDuration(string, time.Duration) {}
func (n *NoopMetricsCollector) RecordOperationResult(string, string)          {}

// LogMetricsCollector writes each measurement as a debug log line.
type LogMetricsCollector struct {
	Logger *zap.Logger
}

func (l *LogMetricsCollector) RecordOperationDuration(operation string, duration time.Duration) {
	l.Logger.Debug("wallet operation duration", zap.String("operation", operation), zap.Duration("duration", duration))
}

func (l *LogMetricsCollector) RecordOperationResult(operation, result string) {
	l.Logger.Debug("wallet operation result", zap.String("operation", operation), zap.String("result", result))
}
