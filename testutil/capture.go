// Package testutil provides test-support helpers for code that writes to the
// process output streams.
package testutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// CaptureMode selects which output streams Capture redirects.
type CaptureMode string

const (
	// CaptureStdout captures just os.Stdout.
	CaptureStdout CaptureMode = "out"

	// CaptureStderr captures just os.Stderr.
	CaptureStderr CaptureMode = "err"

	// CaptureAll captures both os.Stdout and os.Stderr.
	CaptureAll CaptureMode = "all"
)

// ErrUnknownMode reports a capture mode outside "out", "err" and "all".
var ErrUnknownMode = errors.New("unknown capture mode")

// Captured holds the text collected from the redirected streams.
type Captured struct {
	stdout string
	stderr string
}

// Stdout returns the captured standard output with surrounding whitespace
// trimmed.
func (c Captured) Stdout() string {
	return trim(c.stdout)
}

// Stderr returns the captured standard error with surrounding whitespace
// trimmed.
func (c Captured) Stderr() string {
	return trim(c.stderr)
}

func trim(s string) string {
	return string(bytes.TrimSpace([]byte(s)))
}

// Capture redirects the selected process output streams to in-memory buffers
// for the duration of fn, then restores the originals and returns what was
// written. Restoration happens on every exit path, including a panic inside
// fn. An unknown mode fails immediately, before any stream is touched.
func Capture(mode CaptureMode, fn func()) (result Captured, err error) {
	switch mode {
	case CaptureStdout, CaptureStderr, CaptureAll:
	default:
		return Captured{}, fmt.Errorf("%w: %q (want %q, %q, or %q)",
			ErrUnknownMode, mode, CaptureStdout, CaptureStderr, CaptureAll)
	}

	var outRedir, errRedir *redirection
	if mode == CaptureStdout || mode == CaptureAll {
		outRedir, err = redirect(&os.Stdout)
		if err != nil {
			return Captured{}, err
		}
	}
	if mode == CaptureStderr || mode == CaptureAll {
		errRedir, err = redirect(&os.Stderr)
		if err != nil {
			outRedir.restore()
			return Captured{}, err
		}
	}

	defer func() {
		result.stderr = errRedir.restore()
		result.stdout = outRedir.restore()
	}()
	fn()
	return result, nil
}

// redirection tracks one swapped stream so it can be put back exactly once.
type redirection struct {
	target   **os.File
	original *os.File
	reader   *os.File
	writer   *os.File
	buf      bytes.Buffer
	done     chan struct{}
	restored bool
}

// redirect swaps *target for the write end of a pipe and drains the read end
// into a buffer from a goroutine, so writers never block on a full pipe.
func redirect(target **os.File) (*redirection, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	rd := &redirection{
		target:   target,
		original: *target,
		reader:   r,
		writer:   w,
		done:     make(chan struct{}),
	}
	*target = w
	go func() {
		io.Copy(&rd.buf, r)
		close(rd.done)
	}()
	return rd, nil
}

// restore puts the original stream back and returns everything captured.
// Safe to call on a nil or already-restored redirection.
func (rd *redirection) restore() string {
	if rd == nil || rd.restored {
		return ""
	}
	rd.restored = true
	*rd.target = rd.original
	rd.writer.Close()
	<-rd.done
	rd.reader.Close()
	return rd.buf.String()
}
