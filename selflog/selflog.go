// Package selflog provides internal diagnostic logging for finlog itself.
//
// Logging infrastructure must not mask its own failures through its own
// sinks. When selflog is enabled, conditions that would otherwise be
// discarded (sink write failures, teardown anomalies) are reported to the
// configured writer; when disabled, reporting costs a single atomic load.
//
// Messages are formatted as:
//
//	2026-08-26T15:30:45Z [component] message details
//
// Set FINLOG_SELFLOG to enable at startup: "stderr", "stdout", or a file
// path (opened for append).
package selflog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

var (
	outputWriter atomic.Pointer[io.Writer]
	outputFunc   atomic.Pointer[func(string)]

	// writeMu serializes writes so interleaved reports stay line-atomic.
	writeMu sync.Mutex
)

// Enable activates self-logging to the provided writer.
func Enable(w io.Writer) {
	if w == nil {
		return
	}
	outputFunc.Store(nil)
	outputWriter.Store(&w)
}

// EnableFunc activates self-logging through a callback, which receives each
// formatted line.
func EnableFunc(fn func(string)) {
	if fn == nil {
		return
	}
	outputWriter.Store(nil)
	outputFunc.Store(&fn)
}

// Disable deactivates self-logging.
func Disable() {
	outputWriter.Store(nil)
	outputFunc.Store(nil)
}

// IsEnabled reports whether self-logging is currently active.
func IsEnabled() bool {
	return outputWriter.Load() != nil || outputFunc.Load() != nil
}

// Printf reports an internal diagnostic message. The format string should
// name the component in square brackets, e.g. "[file] write failed: %v".
// It is a no-op when self-logging is disabled.
func Printf(format string, args ...any) {
	w := outputWriter.Load()
	fn := outputFunc.Load()
	if w == nil && fn == nil {
		return
	}

	line := time.Now().UTC().Format(time.RFC3339) + " " + fmt.Sprintf(format, args...)

	if w != nil {
		writeMu.Lock()
		fmt.Fprintln(*w, line)
		writeMu.Unlock()
		return
	}
	(*fn)(line)
}

func init() {
	switch target := os.Getenv("FINLOG_SELFLOG"); target {
	case "":
	case "stderr":
		Enable(os.Stderr)
	case "stdout":
		Enable(os.Stdout)
	default:
		if f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			Enable(f)
		}
	}
}
