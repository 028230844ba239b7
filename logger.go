package finlog

import (
	"fmt"
	"time"

	"github.com/finlog/finlog/core"
)

// Logger is a named source of log records bound to a session. Loggers are
// cheap to create and safe to share between goroutines; all state lives in
// the session.
type Logger struct {
	name    string
	session *Session
}

// NewLogger returns a named logger bound to the package-level session.
func NewLogger(name string) *Logger {
	return defaultSession.Logger(name)
}

// Logger returns a named logger bound to this session.
func (s *Session) Logger(name string) *Logger {
	return &Logger{name: name, session: s}
}

// Name returns the logger's name.
func (l *Logger) Name() string {
	return l.name
}

// Log writes one record at the given level. The message is formatted with
// fmt.Sprintf when arguments are supplied.
func (l *Logger) Log(level core.Level, format string, args ...any) {
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}
	l.session.emit(&core.Record{
		Timestamp: time.Now(),
		Name:      l.name,
		Level:     level,
		Message:   message,
	})
}

// Debug writes a record at DEBUG.
func (l *Logger) Debug(format string, args ...any) {
	l.Log(core.DebugLevel, format, args...)
}

// Info writes a record at INFO.
func (l *Logger) Info(format string, args ...any) {
	l.Log(core.InfoLevel, format, args...)
}

// Warning writes a record at WARNING.
func (l *Logger) Warning(format string, args ...any) {
	l.Log(core.WarningLevel, format, args...)
}

// Error writes a record at ERROR.
func (l *Logger) Error(format string, args ...any) {
	l.Log(core.ErrorLevel, format, args...)
}

// Critical writes a record at CRITICAL.
func (l *Logger) Critical(format string, args ...any) {
	l.Log(core.CriticalLevel, format, args...)
}
