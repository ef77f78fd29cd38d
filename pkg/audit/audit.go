// Package audit writes structured records of candidate lifecycle and access
// events through zap.
package audit

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of audit event
type EventType string

const (
	EventRegistrationAccepted EventType = "registration_accepted"
	EventRegistrationRejected EventType = "registration_rejected"
	EventStatusChanged        EventType = "candidate_status_changed"
	EventCandidateDeleted     EventType = "candidate_deleted"
	EventCandidatesExported   EventType = "candidates_exported"
	EventAccessDenied         EventType = "access_denied"
	EventRateLimitTriggered   EventType = "rate_limit_triggered"
	EventCSRFRejected         EventType = "csrf_rejected"
)

// Event is one audit record. Phone numbers must be passed through MaskPhone
// before they land in Details.
type Event struct {
	Timestamp   time.Time
	Event       EventType
	ActorID     string
	ActorRole   string
	CandidateID int64
	IP          string
	RequestID   string
	Details     map[string]any
}

// Logger emits audit events.
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// NewProduction builds the stdout JSON logger used by the API process.
func NewProduction(serviceName, environment string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return New(logger, serviceName, environment)
}

// New wraps an existing zap logger.
func New(logger *zap.Logger, serviceName, environment string) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logger{zapLogger: logger, serviceName: serviceName, environment: environment}
}

// Nop discards everything; handy in tests.
func Nop() *Logger {
	return New(zap.NewNop(), "", "")
}

// Log writes one audit event.
func (l *Logger) Log(ctx context.Context, event Event) {
	if l == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event.Event)),
		zap.Time("occurred_at", event.Timestamp),
	}
	if event.ActorID != "" {
		fields = append(fields, zap.String("actor_id", event.ActorID))
	}
	if event.ActorRole != "" {
		fields = append(fields, zap.String("actor_role", event.ActorRole))
	}
	if event.CandidateID > 0 {
		fields = append(fields, zap.Int64("candidate_id", event.CandidateID))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	level := levelFor(event.Event)
	if ce := l.zapLogger.Check(level, "audit event"); ce != nil {
		ce.Write(fields...)
	}
}

func levelFor(e EventType) zapcore.Level {
	switch e {
	case EventAccessDenied, EventCSRFRejected, EventRateLimitTriggered:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.zapLogger.Sync()
}

// MaskPhone keeps the last four digits: 9876543210 -> ******3210.
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if len(phone) <= 4 {
		return strings.Repeat("*", len(phone))
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
