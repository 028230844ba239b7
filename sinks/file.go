package sinks

import (
	"fmt"
	"os"
	"sync"

	"github.com/finlog/finlog/core"
	"github.com/finlog/finlog/selflog"
)

// FileSink writes log records to a file, one line per record. The file is
// opened for append-or-create; a relative path resolves against the caller's
// working directory and missing parent directories are not created.
type FileSink struct {
	path      string
	file      *os.File
	mu        sync.Mutex
	threshold core.Level
	template  *Template
	isOpen    bool
}

// NewFileSink creates a file sink with the default file template.
func NewFileSink(path string, threshold core.Level) (*FileSink, error) {
	return NewFileSinkWithTemplate(path, threshold, DefaultFileTemplate)
}

// NewFileSinkWithTemplate creates a file sink with a custom output template.
// The template is parsed before the file is touched, so a bad format has no
// partial effect.
func NewFileSinkWithTemplate(path string, threshold core.Level, template string) (*FileSink, error) {
	parsed, err := ParseTemplate(template)
	if err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileSink{
		path:      path,
		file:      file,
		threshold: threshold,
		template:  parsed,
		isOpen:    true,
	}, nil
}

// Emit writes the record to the file if it meets the sink's threshold.
func (fs *FileSink) Emit(record *core.Record) {
	if record.Level < fs.threshold {
		return
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	if !fs.isOpen {
		return
	}
	if _, err := fs.file.WriteString(fs.template.renderLine(record)); err != nil {
		selflog.Printf("[file] write to %s failed: %v", fs.path, err)
	}
}

// Threshold reports the sink's minimum severity.
func (fs *FileSink) Threshold() core.Level {
	return fs.threshold
}

// Flush syncs buffered writes to disk.
func (fs *FileSink) Flush() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if !fs.isOpen {
		return nil
	}
	if err := fs.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	return nil
}

// Close flushes and closes the file. Closing an already-closed sink is a
// no-op.
func (fs *FileSink) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if !fs.isOpen {
		return nil
	}
	fs.isOpen = false

	if err := fs.file.Sync(); err != nil {
		fs.file.Close()
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	if err := fs.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// Path returns the path the sink writes to.
func (fs *FileSink) Path() string {
	return fs.path
}
