package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents different logging levels
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)

// LogComponent represents different engine components for filtering
type LogComponent string

const (
	ComponentSession    LogComponent = "session"
	ComponentSubmission LogComponent = "submission"
	ComponentAssembly   LogComponent = "assembly"
	ComponentRouter     LogComponent = "router"
	ComponentRPC        LogComponent = "rpc"
	ComponentWallet     LogComponent = "wallet"
)

// LogContext holds structured context information for logs
type LogContext struct {
	Player        string
	SessionKey    string
	CorrelationID string
	Endpoint      string
	Component     LogComponent
	Operation     string
	Duration      time.Duration
	Fields        map[string]interface{}
}

// StructuredLogger provides enhanced logging with structured context
type StructuredLogger struct {
	logger    *zap.Logger
	component LogComponent
	context   LogContext
}

// NewStructuredLogger creates a new structured logger for a specific component
func NewStructuredLogger(component LogComponent) *StructuredLogger {
	return &StructuredLogger{
		logger:    Log,
		component: component,
		context:   LogContext{Component: component, Fields: make(map[string]interface{})},
	}
}

// WithContext adds context information to the logger
func (sl *StructuredLogger) WithContext(ctx LogContext) *StructuredLogger {
	newLogger := &StructuredLogger{
		logger:    sl.logger,
		component: sl.component,
		context:   ctx,
	}

	// Ensure component is set
	newLogger.context.Component = sl.component

	// Initialize fields map if nil
	if newLogger.context.Fields == nil {
		newLogger.context.Fields = make(map[string]interface{})
	}

	return newLogger
}

// WithField adds a field to the log context
func (sl *StructuredLogger) WithField(key string, value interface{}) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Fields[key] = value
	return newLogger
}

// WithFields adds multiple fields to the log context
func (sl *StructuredLogger) WithFields(fields map[string]interface{}) *StructuredLogger {
	newLogger := sl.clone()
	for k, v := range fields {
		newLogger.context.Fields[k] = v
	}
	return newLogger
}

// WithPlayer adds the player identity to the log context
func (sl *StructuredLogger) WithPlayer(player string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Player = player
	return newLogger
}

// WithSessionKey adds the session signer public key to the log context
func (sl *StructuredLogger) WithSessionKey(sessionKey string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.SessionKey = sessionKey
	return newLogger
}

// WithCorrelationID adds correlation ID to the log context
func (sl *StructuredLogger) WithCorrelationID(correlationID string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.CorrelationID = correlationID
	return newLogger
}

// WithEndpoint adds the RPC endpoint URL to the log context
func (sl *StructuredLogger) WithEndpoint(endpoint string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Endpoint = endpoint
	return newLogger
}

// WithOperation adds operation name to the log context
func (sl *StructuredLogger) WithOperation(operation string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Operation = operation
	return newLogger
}

// WithDuration adds duration to the log context
func (sl *StructuredLogger) WithDuration(duration time.Duration) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Duration = duration
	return newLogger
}

// clone creates a copy of the structured logger
func (sl *StructuredLogger) clone() *StructuredLogger {
	newFields := make(map[string]interface{})
	for k, v := range sl.context.Fields {
		newFields[k] = v
	}

	return &StructuredLogger{
		logger:    sl.logger,
		component: sl.component,
		context: LogContext{
			Player:        sl.context.Player,
			SessionKey:    sl.context.SessionKey,
			CorrelationID: sl.context.CorrelationID,
			Endpoint:      sl.context.Endpoint,
			Component:     sl.context.Component,
			Operation:     sl.context.Operation,
			Duration:      sl.context.Duration,
			Fields:        newFields,
		},
	}
}

// buildFields creates zap fields from the log context
func (sl *StructuredLogger) buildFields() []zapcore.Field {
	fields := make([]zapcore.Field, 0)

	// Add standard context fields
	if sl.context.Component != "" {
		fields = append(fields, zap.String("component", string(sl.context.Component)))
	}
	if sl.context.Player != "" {
		fields = append(fields, zap.String("player", sl.context.Player))
	}
	if sl.context.SessionKey != "" {
		fields = append(fields, zap.String("session_key", sl.context.SessionKey))
	}
	if sl.context.CorrelationID != "" {
		fields = append(fields, zap.String("correlation_id", sl.context.CorrelationID))
	}
	if sl.context.Endpoint != "" {
		fields = append(fields, zap.String("endpoint", sl.context.Endpoint))
	}
	if sl.context.Operation != "" {
		fields = append(fields, zap.String("operation", sl.context.Operation))
	}
	if sl.context.Duration > 0 {
		fields = append(fields, zap.Duration("duration", sl.context.Duration))
	}

	// Add custom fields
	for key, value := range sl.context.Fields {
		fields = append(fields, zap.Any(key, value))
	}

	return fields
}

// Debug logs a debug message with structured context
func (sl *StructuredLogger) Debug(msg string) {
	sl.logger.Debug(msg, sl.buildFields()...)
}

// Info logs an info message with structured context
func (sl *StructuredLogger) Info(msg string) {
	sl.logger.Info(msg, sl.buildFields()...)
}

// Warn logs a warning message with structured context
func (sl *StructuredLogger) Warn(msg string) {
	sl.logger.Warn(msg, sl.buildFields()...)
}

// Error logs an error message with structured context
func (sl *StructuredLogger) Error(msg string, err error) {
	fields := sl.buildFields()
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	sl.logger.Error(msg, fields...)
}

// LogOperation logs the start and end of an operation with timing
func (sl *StructuredLogger) LogOperation(operation string, fn func() error) error {
	start := time.Now()
	opLogger := sl.WithOperation(operation)

	opLogger.Info("Operation started")

	err := fn()
	duration := time.Since(start)

	finalLogger := opLogger.WithDuration(duration)

	if err != nil {
		finalLogger.Error("Operation failed", err)
	} else {
		finalLogger.Info("Operation completed")
	}

	return err
}

// LogSubmissionAttempt logs one transaction submission attempt against an endpoint
func (sl *StructuredLogger) LogSubmissionAttempt(endpoint string, attempt int, failureClass string, reason string) {
	sl.WithFields(map[string]interface{}{
		"endpoint":      endpoint,
		"attempt":       attempt,
		"failure_class": failureClass,
		"reason":        reason,
	}).Debug("Submission attempt recorded")
}

// LogSessionEvent logs session lifecycle events
func (sl *StructuredLogger) LogSessionEvent(sessionKey, eventType string, metadata map[string]interface{}) {
	fields := map[string]interface{}{
		"session_key": sessionKey,
		"event_type":  eventType,
	}

	// Add metadata fields
	for k, v := range metadata {
		fields[k] = v
	}

	sl.WithFields(fields).Info("Session event occurred")
}

// Performance logging helpers

// Timer helps measure operation duration
type Timer struct {
	start  time.Time
	logger *StructuredLogger
	name   string
}

// NewTimer creates a new timer for measuring operation duration
func (sl *StructuredLogger) NewTimer(operationName string) *Timer {
	return &Timer{
		start:  time.Now(),
		logger: sl,
		name:   operationName,
	}
}

// Stop stops the timer and logs the duration
func (t *Timer) Stop() {
	duration := time.Since(t.start)
	t.logger.WithOperation(t.name).WithDuration(duration).Debug("Operation timing")
}

// StopWithResult stops the timer and logs the result
func (t *Timer) StopWithResult(success bool, err error) {
	duration := time.Since(t.start)
	logger := t.logger.WithOperation(t.name).WithDuration(duration).WithField("success", success)

	if success {
		logger.Info(fmt.Sprintf("%s completed successfully", t.name))
	} else {
		logger.Error(fmt.Sprintf("%s failed", t.name), err)
	}
}
