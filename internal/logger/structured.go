package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogComponent represents different system components for filtering
type LogComponent string

const (
	ComponentFees     LogComponent = "fees"
	ComponentSchedule LogComponent = "schedule"
)

// StructuredLogger attaches a component and optional request context to every
// entry it writes
type StructuredLogger struct {
	logger        *zap.Logger
	component     LogComponent
	correlationID string
	operation     string
	fields        []zapcore.Field
}

// NewStructuredLogger creates a new structured logger for a specific component
func NewStructuredLogger(component LogComponent) *StructuredLogger {
	return &StructuredLogger{
		logger:    L(),
		component: component,
	}
}

// WithCorrelationID adds correlation ID to the log context
func (sl *StructuredLogger) WithCorrelationID(correlationID string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.correlationID = correlationID
	return newLogger
}

// WithOperation adds operation name to the log context
func (sl *StructuredLogger) WithOperation(operation string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.operation = operation
	return newLogger
}

// WithFields adds fields to the log context
func (sl *StructuredLogger) WithFields(fields ...zapcore.Field) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.fields = append(newLogger.fields, fields...)
	return newLogger
}

func (sl *StructuredLogger) clone() *StructuredLogger {
	fields := make([]zapcore.Field, len(sl.fields))
	copy(fields, sl.fields)
	return &StructuredLogger{
		logger:        sl.logger,
		component:     sl.component,
		correlationID: sl.correlationID,
		operation:     sl.operation,
		fields:        fields,
	}
}

func (sl *StructuredLogger) buildFields(extra ...zapcore.Field) []zapcore.Field {
	fields := make([]zapcore.Field, 0, len(sl.fields)+len(extra)+3)
	fields = append(fields, zap.String("component", string(sl.component)))
	if sl.correlationID != "" {
		fields = append(fields, zap.String("correlation_id", sl.correlationID))
	}
	if sl.operation != "" {
		fields = append(fields, zap.String("operation", sl.operation))
	}
	fields = append(fields, sl.fields...)
	return append(fields, extra...)
}

// Debug logs a debug message with structured context
func (sl *StructuredLogger) Debug(msg string, fields ...zapcore.Field) {
	sl.logger.Debug(msg, sl.buildFields(fields...)...)
}

// Info logs an info message with structured context
func (sl *StructuredLogger) Info(msg string, fields ...zapcore.Field) {
	sl.logger.Info(msg, sl.buildFields(fields...)...)
}

// Warn logs a warning message with structured context
func (sl *StructuredLogger) Warn(msg string, fields ...zapcore.Field) {
	sl.logger.Warn(msg, sl.buildFields(fields...)...)
}

// Error logs an error message with structured context
func (sl *StructuredLogger) Error(msg string, err error, fields ...zapcore.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	sl.logger.Error(msg, sl.buildFields(fields...)...)
}

// LogOperation logs the end of an operation with its duration
func (sl *StructuredLogger) LogOperation(operation string, fn func() error) error {
	start := time.Now()
	opLogger := sl.WithOperation(operation)

	err := fn()
	duration := zap.Duration("duration", time.Since(start))

	if err != nil {
		opLogger.Warn("Operation failed", duration, zap.Error(err))
	} else {
		opLogger.Debug("Operation completed", duration)
	}

	return err
}
