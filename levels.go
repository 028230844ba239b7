package finlog

import (
	"fmt"

	"github.com/finlog/finlog/core"
)

// Fine-grained severity levels interleaved between the conventional five.
// The numeric ordering relative to core's scale is load-bearing: filtering
// compares numerically, so L0 outranks WARNING while L2..L4 sit between
// WARNING and INFO, and so on down to the NOTSET floor.
//
//	CRITICAL 50
//	ERROR    40
//	L0       35
//	L1       30  (= WARNING)
//	L2       28
//	L3       26
//	L4       24
//	L5       20  (= INFO)
//	L6       18
//	L7       16
//	L8       14
//	L9       12
//	L10      10  (= DEBUG)
//	L11       9
//	L12       8
//	L20       0  (= NOTSET)
const (
	L0  = core.Level(35)
	L1  = core.Level(30)
	L2  = core.Level(28)
	L3  = core.Level(26)
	L4  = core.Level(24)
	L5  = core.Level(20)
	L6  = core.Level(18)
	L7  = core.Level(16)
	L8  = core.Level(14)
	L9  = core.Level(12)
	L10 = core.Level(10)
	L11 = core.Level(9)
	L12 = core.Level(8)
	L20 = core.Level(0)
)

// NamedLevel pairs a display name with its severity code.
type NamedLevel struct {
	Name  string
	Level core.Level
}

// fineLevels is the ordered definition of the custom levels, most severe
// first. Codes are fixed constants and never change within a process.
var fineLevels = []NamedLevel{
	{"L0", L0},
	{"L1", L1},
	{"L2", L2},
	{"L3", L3},
	{"L4", L4},
	{"L5", L5},
	{"L6", L6},
	{"L7", L7},
	{"L8", L8},
	{"L9", L9},
	{"L10", L10},
	{"L11", L11},
	{"L12", L12},
	{"L20", L20},
}

// FineLevels returns the ordered set of fine-grained levels, most severe
// first.
func FineLevels() []NamedLevel {
	levels := make([]NamedLevel, len(fineLevels))
	copy(levels, fineLevels)
	return levels
}

// RegisterLevels registers every fine-grained level's display name in the
// process-wide name table. It runs once from package init; calling it again
// is a harmless no-op, mirroring repeated imports of the defining module.
func RegisterLevels() {
	for _, nl := range fineLevels {
		core.RegisterLevelName(nl.Level, nl.Name)
	}
}

// ParseLevel resolves a registered level name (conventional or fine-grained)
// to its severity code.
func ParseLevel(name string) (core.Level, error) {
	if level, ok := core.LevelByName(name); ok {
		return level, nil
	}
	return 0, fmt.Errorf("%q does not have an attribute of %q", "LogLevel", name)
}

func init() {
	RegisterLevels()
}
