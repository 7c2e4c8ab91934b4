package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"go-jobboard-api/pkg/logger"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventLoginFailed        EventType = "login_failed"
	EventLoginSuccess       EventType = "login_success"
	EventUserRegistered     EventType = "user_registered"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventUnauthorizedAccess EventType = "unauthorized_access"
	EventInvalidToken       EventType = "invalid_token"
	EventLoginBlocked       EventType = "login_blocked"
)

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Timestamp    time.Time
	Event        EventType
	SubjectType  string // "email", "ip", "user_id"
	SubjectValue string // masked or hashed before it reaches the log
	IP           string
	UserAgent    string
	RequestID    string
	Details      map[string]interface{}
}

// SecurityLogger writes audit events through zap.
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var (
	defaultLogger *SecurityLogger
	defaultMu     sync.Mutex
)

func NewSecurityLogger(base *zap.Logger, serviceName, environment string) *SecurityLogger {
	return &SecurityLogger{
		zapLogger:   base.Named("security"),
		serviceName: serviceName,
		environment: environment,
	}
}

// InitSecurityLogger installs the process-wide security logger.
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	sl := NewSecurityLogger(logger.Log, serviceName, environment)
	defaultMu.Lock()
	defaultLogger = sl
	defaultMu.Unlock()
	return sl
}

// DefaultLogger returns the default security logger instance
func DefaultLogger() *SecurityLogger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = NewSecurityLogger(logger.Log, "go-jobboard-api", "development")
	}
	return defaultLogger
}

func levelFor(event EventType) zapcore.Level {
	switch event {
	case EventLoginSuccess, EventUserRegistered:
		return zapcore.InfoLevel
	case EventUnauthorizedAccess, EventLoginBlocked:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// Log logs a security event
func (sl *SecurityLogger) Log(_ context.Context, event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	fields := []zap.Field{
		zap.String("service", sl.serviceName),
		zap.String("env", sl.environment),
		zap.String("event", string(event.Event)),
		zap.String("severity", string(GetSeverity(event.Event))),
		zap.Time("event_time", event.Timestamp),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	sl.zapLogger.Log(levelFor(event.Event), string(event.Event), fields...)
}

// RequestMeta carries the request attributes every audit event records.
type RequestMeta struct {
	IP        string
	UserAgent string
	RequestID string
}

func (sl *SecurityLogger) LogLoginFailed(ctx context.Context, email string, meta RequestMeta, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventLoginFailed,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		IP:           meta.IP,
		UserAgent:    meta.UserAgent,
		RequestID:    meta.RequestID,
		Details:      map[string]interface{}{"reason": reason},
	})
}

func (sl *SecurityLogger) LogLoginSuccess(ctx context.Context, userID string, meta RequestMeta) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventLoginSuccess,
		SubjectType:  "user_id",
		SubjectValue: HashValue(userID),
		IP:           meta.IP,
		UserAgent:    meta.UserAgent,
		RequestID:    meta.RequestID,
	})
}

func (sl *SecurityLogger) LogUserRegistered(ctx context.Context, userID, role string, meta RequestMeta) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventUserRegistered,
		SubjectType:  "user_id",
		SubjectValue: HashValue(userID),
		IP:           meta.IP,
		RequestID:    meta.RequestID,
		Details:      map[string]interface{}{"role": role},
	})
}

func (sl *SecurityLogger) LogRateLimitTriggered(ctx context.Context, meta RequestMeta, endpoint string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: meta.IP,
		IP:           meta.IP,
		UserAgent:    meta.UserAgent,
		RequestID:    meta.RequestID,
		Details:      map[string]interface{}{"endpoint": endpoint},
	})
}

func (sl *SecurityLogger) LogLoginBlocked(ctx context.Context, email string, meta RequestMeta, attempts int) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventLoginBlocked,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		IP:           meta.IP,
		UserAgent:    meta.UserAgent,
		RequestID:    meta.RequestID,
		Details:      map[string]interface{}{"attempts": attempts},
	})
}

func (sl *SecurityLogger) LogInvalidToken(ctx context.Context, meta RequestMeta, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventInvalidToken,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
		RequestID: meta.RequestID,
		Details:   map[string]interface{}{"reason": reason},
	})
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if len(email) < 3 || at < 0 {
		return "***"
	}
	if at <= 1 {
		return "***" + email[at:]
	}
	return email[:1] + "***" + email[at:]
}

// HashValue creates a short SHA256 digest (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}
