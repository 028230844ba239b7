package sinks

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/finlog/finlog/core"
	"github.com/finlog/finlog/selflog"
)

// ANSI colors applied per record level when the writer is a terminal.
const (
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
	ansiReset  = "\033[0m"
)

// ConsoleSink writes log records to a console stream, one line per record.
type ConsoleSink struct {
	out       io.Writer
	mu        sync.Mutex
	threshold core.Level
	template  *Template
	useColor  bool
}

// NewConsoleSink creates a console sink writing to stdout with the default
// template.
func NewConsoleSink(threshold core.Level) *ConsoleSink {
	return &ConsoleSink{
		out:       os.Stdout,
		threshold: threshold,
		template:  MustParseTemplate(DefaultConsoleTemplate),
		useColor:  shouldUseColor(os.Stdout),
	}
}

// NewConsoleSinkWithWriter creates a console sink with a custom writer.
func NewConsoleSinkWithWriter(threshold core.Level, w io.Writer) *ConsoleSink {
	return &ConsoleSink{
		out:       w,
		threshold: threshold,
		template:  MustParseTemplate(DefaultConsoleTemplate),
		useColor:  shouldUseColor(w),
	}
}

// NewConsoleSinkWithTemplate creates a console sink writing to stdout with a
// custom output template.
func NewConsoleSinkWithTemplate(threshold core.Level, template string) (*ConsoleSink, error) {
	return NewConsoleSinkWithTemplateAndWriter(threshold, template, os.Stdout)
}

// NewConsoleSinkWithTemplateAndWriter creates a console sink with both a
// custom template and a custom writer.
func NewConsoleSinkWithTemplateAndWriter(threshold core.Level, template string, w io.Writer) (*ConsoleSink, error) {
	parsed, err := ParseTemplate(template)
	if err != nil {
		return nil, err
	}
	return &ConsoleSink{
		out:       w,
		threshold: threshold,
		template:  parsed,
		useColor:  shouldUseColor(w),
	}, nil
}

// Emit writes the record to the console if it meets the sink's threshold.
func (cs *ConsoleSink) Emit(record *core.Record) {
	if record.Level < cs.threshold {
		return
	}

	line := cs.template.renderLine(record)
	if cs.useColor {
		switch {
		case record.Level >= core.ErrorLevel:
			line = ansiRed + line[:len(line)-1] + ansiReset + "\n"
		case record.Level >= core.WarningLevel:
			line = ansiYellow + line[:len(line)-1] + ansiReset + "\n"
		}
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	if _, err := io.WriteString(cs.out, line); err != nil {
		selflog.Printf("[console] write failed: %v", err)
	}
}

// Threshold reports the sink's minimum severity.
func (cs *ConsoleSink) Threshold() core.Level {
	return cs.threshold
}

// Flush is a no-op: console writes are unbuffered.
func (cs *ConsoleSink) Flush() error {
	return nil
}

// Close releases nothing: the sink does not own the console stream.
func (cs *ConsoleSink) Close() error {
	return nil
}

// shouldUseColor reports whether the writer is an interactive terminal.
// NO_COLOR always wins.
func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
