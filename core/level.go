package core

import (
	"fmt"
	"sync"
)

// Level is the numeric severity of a log record. Higher values are more
// severe. The conventional levels occupy the 0..50 scale; finer-grained
// levels may be interleaved anywhere between them, since filtering compares
// numerically rather than by identity.
type Level int

const (
	// NotSetLevel is the floor of the severity scale.
	NotSetLevel Level = 0

	// DebugLevel is for debugging information.
	DebugLevel Level = 10

	// InfoLevel is for informational messages.
	InfoLevel Level = 20

	// WarningLevel is for warnings.
	WarningLevel Level = 30

	// ErrorLevel is for errors.
	ErrorLevel Level = 40

	// CriticalLevel is for unrecoverable errors.
	CriticalLevel Level = 50
)

// levelNames is the process-wide table mapping levels to display names.
// Registration happens once at process start, but lookups run on every
// formatted emit, so reads take the lock too.
var (
	levelMu    sync.RWMutex
	levelNames = map[Level]string{
		NotSetLevel:   "NOTSET",
		DebugLevel:    "DEBUG",
		InfoLevel:     "INFO",
		WarningLevel:  "WARNING",
		ErrorLevel:    "ERROR",
		CriticalLevel: "CRITICAL",
	}
	namedLevels = map[string]Level{
		"NOTSET":   NotSetLevel,
		"DEBUG":    DebugLevel,
		"INFO":     InfoLevel,
		"WARNING":  WarningLevel,
		"ERROR":    ErrorLevel,
		"CRITICAL": CriticalLevel,
	}
)

// RegisterLevelName associates a display name with a level in the
// process-wide name table. Registering the same pair again is a no-op, so
// callers may invoke it any number of times. Registering a new name for an
// already-named level makes the new name the display name while the old one
// stays resolvable by LevelByName, matching the host-facility contract.
func RegisterLevelName(level Level, name string) {
	levelMu.Lock()
	defer levelMu.Unlock()
	levelNames[level] = name
	namedLevels[name] = level
}

// LevelName returns the registered display name for a level, or a
// "Level <n>" placeholder when the level was never registered.
func LevelName(level Level) string {
	levelMu.RLock()
	name, ok := levelNames[level]
	levelMu.RUnlock()
	if !ok {
		return fmt.Sprintf("Level %d", int(level))
	}
	return name
}

// LevelByName looks up a level by its registered display name.
func LevelByName(name string) (Level, bool) {
	levelMu.RLock()
	level, ok := namedLevels[name]
	levelMu.RUnlock()
	return level, ok
}

// String returns the registered display name of the level.
func (l Level) String() string {
	return LevelName(l)
}
