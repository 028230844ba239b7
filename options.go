package finlog

import (
	"io"
	"os"

	"github.com/finlog/finlog/core"
	"github.com/finlog/finlog/sinks"
)

// activateConfig holds the configuration assembled from Activate options.
type activateConfig struct {
	filePath        string
	fileLevel       core.Level
	fileLevelSet    bool
	consoleTemplate string
	fileTemplate    string
	consoleWriter   io.Writer
	announce        bool
	announceLabel   string
}

func defaultActivateConfig() activateConfig {
	return activateConfig{
		consoleTemplate: sinks.DefaultConsoleTemplate,
		fileTemplate:    sinks.DefaultFileTemplate,
		consoleWriter:   os.Stdout,
	}
}

// Option is a functional option for Activate.
type Option func(*activateConfig)

// WithFilePath attaches a file sink writing to the given path. The file is
// opened for append-or-create; a relative path resolves against the current
// working directory.
func WithFilePath(path string) Option {
	return func(c *activateConfig) {
		c.filePath = path
	}
}

// WithFileLevel sets the file sink's severity threshold. Without it the file
// sink uses the session's minimum level.
func WithFileLevel(level core.Level) Option {
	return func(c *activateConfig) {
		c.fileLevel = level
		c.fileLevelSet = true
	}
}

// WithConsoleTemplate sets the console sink's output template.
func WithConsoleTemplate(template string) Option {
	return func(c *activateConfig) {
		c.consoleTemplate = template
	}
}

// WithFileTemplate sets the file sink's output template.
func WithFileTemplate(template string) Option {
	return func(c *activateConfig) {
		c.fileTemplate = template
	}
}

// WithConsoleWriter redirects the console sink to a custom writer. The
// default is stdout.
func WithConsoleWriter(w io.Writer) Option {
	return func(c *activateConfig) {
		c.consoleWriter = w
	}
}

// WithAnnounce emits one WARNING record on activation stating the configured
// level and the current time.
func WithAnnounce() Option {
	return func(c *activateConfig) {
		c.announce = true
	}
}

// WithAnnounceLabel is WithAnnounce with a caller-supplied label appended to
// the announcement.
func WithAnnounceLabel(label string) Option {
	return func(c *activateConfig) {
		c.announce = true
		c.announceLabel = label
	}
}
