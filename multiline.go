package finlog

import (
	"fmt"
	"strings"

	"github.com/finlog/finlog/core"
)

// LogMultiline emits one record per text line of the message and each extra
// value, in order, message lines first. Sinks treat an embedded line break as
// part of a single record's message, so callers who want one log line per
// text line must split explicitly; this does the splitting.
//
// Strings are split on "\n". A []string is taken as already-split lines.
// Anything else is rendered with fmt.Sprint and then split. There are no
// error conditions.
func LogMultiline(logger *Logger, level core.Level, message any, extra ...any) {
	lines := messageLines(message)
	for _, x := range extra {
		lines = append(lines, messageLines(x)...)
	}
	for _, line := range lines {
		logger.Log(level, "%s", line)
	}
}

func messageLines(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case string:
		return strings.Split(v, "\n")
	default:
		return strings.Split(fmt.Sprint(v), "\n")
	}
}
