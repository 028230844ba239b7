package core

import "testing"

func TestConventionalLevelNames(t *testing.T) {
	tests := []struct {
		level Level
		name  string
	}{
		{NotSetLevel, "NOTSET"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarningLevel, "WARNING"},
		{ErrorLevel, "ERROR"},
		{CriticalLevel, "CRITICAL"},
	}
	for _, tt := range tests {
		if got := LevelName(tt.level); got != tt.name {
			t.Errorf("LevelName(%d) = %q, want %q", int(tt.level), got, tt.name)
		}
		if got, ok := LevelByName(tt.name); !ok || got != tt.level {
			t.Errorf("LevelByName(%q) = %d, %v, want %d", tt.name, int(got), ok, int(tt.level))
		}
	}
}

func TestLevelNameUnregistered(t *testing.T) {
	if got := LevelName(Level(23)); got != "Level 23" {
		t.Errorf("LevelName(23) = %q, want %q", got, "Level 23")
	}
	if got := Level(37).String(); got != "Level 37" {
		t.Errorf("Level(37).String() = %q, want %q", got, "Level 37")
	}
}

func TestRegisterLevelNameIdempotent(t *testing.T) {
	RegisterLevelName(Level(42), "ANSWER")
	RegisterLevelName(Level(42), "ANSWER")
	RegisterLevelName(Level(42), "ANSWER")

	if got := LevelName(Level(42)); got != "ANSWER" {
		t.Errorf("LevelName(42) = %q, want %q", got, "ANSWER")
	}
	if got, ok := LevelByName("ANSWER"); !ok || got != Level(42) {
		t.Errorf("LevelByName(ANSWER) = %d, %v", int(got), ok)
	}
}

func TestRegisterLevelNameReplacesDisplayName(t *testing.T) {
	RegisterLevelName(Level(43), "FIRST")
	RegisterLevelName(Level(43), "SECOND")

	if got := LevelName(Level(43)); got != "SECOND" {
		t.Errorf("display name after re-registration = %q, want SECOND", got)
	}
	// The old name must stay resolvable, as in the host facility's table.
	if got, ok := LevelByName("FIRST"); !ok || got != Level(43) {
		t.Errorf("LevelByName(FIRST) = %d, %v, want 43, true", int(got), ok)
	}
}

func TestLevelByNameUnknown(t *testing.T) {
	if _, ok := LevelByName("NO_SUCH_LEVEL"); ok {
		t.Error("LevelByName accepted an unregistered name")
	}
}
