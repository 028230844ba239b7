package finlog

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/finlog/finlog/core"
	"github.com/finlog/finlog/selflog"
	"github.com/finlog/finlog/sinks"
)

// maxDetachIterations bounds the teardown loop. Hitting the cap means the
// sink list was mutated outside the session's control, which is a logic bug
// rather than a recoverable condition.
const maxDetachIterations = 50

// ErrSinksRemain reports that deactivation could not clear the sink list.
var ErrSinksRemain = errors.New("sinks remained attached after teardown")

// sessionLoggerName identifies records the session emits about itself, such
// as the activation announcement.
const sessionLoggerName = "finlog"

// Session owns the process-wide logging configuration: the ordered list of
// attached sinks and the global minimum severity. At most one console and
// one file sink are attached at a time; activation always tears down prior
// sinks first, so repeated calls never accumulate handlers. All methods are
// safe for concurrent use.
type Session struct {
	mu       sync.RWMutex
	minLevel core.Level
	sinks    []core.Sink
}

// NewSession creates an inactive session with no sinks attached.
func NewSession() *Session {
	return &Session{}
}

// defaultSession backs the package-level Activate/Deactivate/Flush calls for
// programs that want the conventional single process-wide session.
var defaultSession = NewSession()

// Default returns the package-level session.
func Default() *Session {
	return defaultSession
}

// Activate configures the session: any existing sinks are torn down, the
// global minimum severity is set to minLevel, an optional file sink is
// attached (threshold defaulting to minLevel), and a console sink is always
// attached at minLevel. File-open and template-parse failures abort
// activation before any sink is attached and are returned to the caller.
func (s *Session) Activate(minLevel core.Level, opts ...Option) error {
	cfg := defaultActivateConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.fileLevelSet {
		cfg.fileLevel = minLevel
	}

	if err := s.Deactivate(); err != nil {
		return err
	}

	// Build every sink before touching session state so a failure leaves the
	// session cleanly deactivated.
	var attach []core.Sink
	if cfg.filePath != "" {
		fileSink, err := sinks.NewFileSinkWithTemplate(cfg.filePath, cfg.fileLevel, cfg.fileTemplate)
		if err != nil {
			return err
		}
		attach = append(attach, fileSink)
	}
	consoleSink, err := sinks.NewConsoleSinkWithTemplateAndWriter(minLevel, cfg.consoleTemplate, cfg.consoleWriter)
	if err != nil {
		for _, sink := range attach {
			sink.Close()
		}
		return err
	}
	attach = append(attach, consoleSink)

	s.mu.Lock()
	s.minLevel = minLevel
	s.sinks = attach
	s.mu.Unlock()

	if cfg.announce {
		text := fmt.Sprintf("Logging configured to level %s at %s",
			core.LevelName(minLevel), time.Now().Format("2006-01-02 15:04:05"))
		if cfg.announceLabel != "" {
			text += " in " + cfg.announceLabel
		}
		s.Logger(sessionLoggerName).Log(core.WarningLevel, "%s", text)
	}
	return nil
}

// Deactivate detaches every sink, flushing and closing each, and guarantees
// zero sinks remain attached on a nil return. It is idempotent. Flush and
// close failures during teardown are reported through selflog rather than
// aborting, so one bad sink cannot strand the rest.
func (s *Session) Deactivate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; len(s.sinks) > 0; i++ {
		if i >= maxDetachIterations {
			selflog.Printf("[session] teardown cap hit with %d sinks still attached", len(s.sinks))
			return fmt.Errorf("deactivate exceeded %d iterations with %d sinks attached: %w",
				maxDetachIterations, len(s.sinks), ErrSinksRemain)
		}
		sink := s.sinks[len(s.sinks)-1]
		s.sinks = s.sinks[:len(s.sinks)-1]
		if err := sink.Flush(); err != nil {
			selflog.Printf("[session] flush during teardown failed: %v", err)
		}
		if err := sink.Close(); err != nil {
			selflog.Printf("[session] close during teardown failed: %v", err)
		}
	}

	if len(s.sinks) != 0 {
		return fmt.Errorf("%d sinks attached after teardown: %w", len(s.sinks), ErrSinksRemain)
	}
	s.sinks = nil
	return nil
}

// Flush flushes every attached sink without detaching any. It is a no-op
// when the session is inactive and never fails: flush errors belong to the
// sinks and are reported through selflog.
func (s *Session) Flush() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sink := range s.sinks {
		if err := sink.Flush(); err != nil {
			selflog.Printf("[session] flush failed: %v", err)
		}
	}
}

// Active reports whether any sinks are attached.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sinks) > 0
}

// SinkCount returns the number of attached sinks.
func (s *Session) SinkCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sinks)
}

// MinimumLevel returns the session's global severity threshold.
func (s *Session) MinimumLevel() core.Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.minLevel
}

// emit routes a record to every attached sink. The session applies the
// global minimum; each sink then applies its own threshold.
func (s *Session) emit(record *core.Record) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.sinks) == 0 || record.Level < s.minLevel {
		return
	}
	for _, sink := range s.sinks {
		sink.Emit(record)
	}
}

// Activate configures the package-level session.
func Activate(minLevel core.Level, opts ...Option) error {
	return defaultSession.Activate(minLevel, opts...)
}

// Deactivate tears down the package-level session.
func Deactivate() error {
	return defaultSession.Deactivate()
}

// Flush flushes the package-level session's sinks.
func Flush() {
	defaultSession.Flush()
}
