// Package configuration builds a logging session from a settings file.
// Formats follow the file extension (YAML, JSON, TOML); any value can be
// overridden through FINLOG_-prefixed environment variables.
package configuration

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/finlog/finlog"
	"github.com/finlog/finlog/core"
)

// Config is the file representation of a logging session. Levels are given
// by registered display name ("L5", "INFO", ...) so settings files never
// carry raw severity codes.
type Config struct {
	// Level is the session's minimum severity.
	Level string `mapstructure:"level"`

	// FilePath attaches a file sink when non-empty.
	FilePath string `mapstructure:"file_path"`

	// FileLevel is the file sink's threshold; empty means Level.
	FileLevel string `mapstructure:"file_level"`

	// ConsoleTemplate overrides the console output template.
	ConsoleTemplate string `mapstructure:"console_template"`

	// FileTemplate overrides the file output template.
	FileTemplate string `mapstructure:"file_template"`

	// Announce emits the activation record.
	Announce bool `mapstructure:"announce"`

	// AnnounceLabel is appended to the activation record.
	AnnounceLabel string `mapstructure:"announce_label"`
}

// Load reads a settings file into a Config.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("FINLOG")
	v.AutomaticEnv()
	v.SetDefault("level", "INFO")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve maps the config to a minimum level and Activate options. Unknown
// level names fail here, before any sink is touched.
func (c *Config) Resolve() (core.Level, []finlog.Option, error) {
	level, err := finlog.ParseLevel(c.Level)
	if err != nil {
		return 0, nil, err
	}

	var opts []finlog.Option
	if c.FilePath != "" {
		opts = append(opts, finlog.WithFilePath(c.FilePath))
	}
	if c.FileLevel != "" {
		fileLevel, err := finlog.ParseLevel(c.FileLevel)
		if err != nil {
			return 0, nil, err
		}
		opts = append(opts, finlog.WithFileLevel(fileLevel))
	}
	if c.ConsoleTemplate != "" {
		opts = append(opts, finlog.WithConsoleTemplate(c.ConsoleTemplate))
	}
	if c.FileTemplate != "" {
		opts = append(opts, finlog.WithFileTemplate(c.FileTemplate))
	}
	if c.AnnounceLabel != "" {
		opts = append(opts, finlog.WithAnnounceLabel(c.AnnounceLabel))
	} else if c.Announce {
		opts = append(opts, finlog.WithAnnounce())
	}
	return level, opts, nil
}

// Activate applies the config to the given session.
func (c *Config) Activate(session *finlog.Session) error {
	level, opts, err := c.Resolve()
	if err != nil {
		return err
	}
	return session.Activate(level, opts...)
}
