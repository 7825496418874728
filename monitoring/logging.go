package monitoring

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Component string         `json:"component"`
	EventType string         `json:"event_type"`
	Details   map[string]any `json:"details,omitempty"`
}

type Logger interface {
	Log(ctx context.Context, level LogLevel, eventType string, message string, details map[string]any)
}

type logger struct {
	component string
	minLevel  LogLevel
	now       func() time.Time
	mu        sync.Mutex
	enc       *json.Encoder
}

// NewLogger returns a Logger writing one JSON entry per line to w, dropping
// entries below minLevel.
func NewLogger(w io.Writer, component string, minLevel LogLevel) Logger {
	return &logger{
		component: component,
		minLevel:  minLevel,
		now:       time.Now,
		enc:       json.NewEncoder(w),
	}
}

func (l *logger) Log(_ context.Context, level LogLevel, eventType string, message string, details map[string]any) {
	if level < l.minLevel {
		return
	}
	entry := LogEntry{
		Timestamp: l.now(),
		Level:     level.String(),
		Message:   message,
		Component: l.component,
		EventType: eventType,
		Details:   details,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(entry)
}

type nopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

func (nopLogger) Log(context.Context, LogLevel, string, string, map[string]any) {}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
