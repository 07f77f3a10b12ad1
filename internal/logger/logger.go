package logger

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gzhole/labelshield/internal/profile"
	"github.com/gzhole/labelshield/internal/redact"
)

// defaultMaxLogBytes is the size at which the audit log is rotated to
// <path>.1. Only one backup is kept.
const defaultMaxLogBytes = 10 * 1024 * 1024

// Sources of an analysis.
const (
	SourceCLI  = "cli"
	SourceHTTP = "http"
	SourceMCP  = "mcp"
)

type AnalysisEvent struct {
	ID                 string           `json:"id"`
	Timestamp          string           `json:"timestamp"`
	Source             string           `json:"source"`
	UserID             string           `json:"user_id,omitempty"`
	Ingredients        []string         `json:"ingredients"`
	Profile            *profile.Profile `json:"profile,omitempty"`
	Score              int              `json:"score"`
	RiskClassification string           `json:"risk_classification,omitempty"`
	Flagged            []string         `json:"flagged,omitempty"`
	Unknown            []string         `json:"unknown,omitempty"`
	ConflictCount      int              `json:"conflict_count"`
	CacheHit           bool             `json:"cache_hit,omitempty"`
	Error              string           `json:"error,omitempty"`
}

type AuditLogger struct {
	path     string
	file     *os.File
	size     int64
	maxBytes int64
	redact   bool
	mu       sync.Mutex
}

// Option configures an AuditLogger.
type Option func(*AuditLogger)

// WithRedaction toggles masking of profile values and email-like user ids.
// It is on by default.
func WithRedaction(on bool) Option {
	return func(l *AuditLogger) { l.redact = on }
}

func New(path string, opts ...Option) (*AuditLogger, error) {
	l := &AuditLogger{
		path:     path,
		maxBytes: defaultMaxLogBytes,
		redact:   true,
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.open(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *AuditLogger) open() error {
	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return err
	}
	l.file = file
	l.size = info.Size()
	return nil
}

// Log appends one event as a JSON line. ID and Timestamp are filled in when
// empty.
func (l *AuditLogger) Log(event AnalysisEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	if l.redact {
		if event.Profile != nil {
			masked := redact.Profile(*event.Profile)
			event.Profile = &masked
		}
		event.UserID = redact.UserID(event.UserID)
	}
	if event.Error != "" {
		event.Error = redact.Redact(event.Error)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if l.size+int64(len(data)) > l.maxBytes && l.size > 0 {
		if err := l.rotate(); err != nil {
			return err
		}
	}

	n, err := l.file.Write(data)
	l.size += int64(n)
	return err
}

func (l *AuditLogger) rotate() error {
	if err := l.file.Close(); err != nil {
		return err
	}
	if err := os.Rename(l.path, l.path+".1"); err != nil {
		return err
	}
	return l.open()
}

// Path returns the log file location.
func (l *AuditLogger) Path() string {
	return l.path
}

func (l *AuditLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}
