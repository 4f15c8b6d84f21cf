// Package config loads glrr tool settings from TOML or YAML files.
//
// The format is chosen by file extension: .toml, or .yaml and .yml.
// Missing fields take the defaults returned by [Default].
//
//	frames = 3
//
//	[trace]
//	page_size = 65536
//
//	[replay]
//	host = "softgl"
//	relaxed = true
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/glrr/recording"
	"github.com/gogpu/glrr/replay"
	"github.com/gogpu/glrr/trace"
)

// Config is the top-level configuration of the glrr tools.
type Config struct {
	// Frames is the number of frames to record; -1 records until stopped.
	Frames    int          `toml:"frames" yaml:"frames"`
	EnumNames *bool        `toml:"enum_names" yaml:"enum_names"`
	Canvas    CanvasConfig `toml:"canvas" yaml:"canvas"`
	Trace     TraceConfig  `toml:"trace" yaml:"trace"`
	Replay    ReplayConfig `toml:"replay" yaml:"replay"`
	Archive   string       `toml:"archive" yaml:"archive"`
	LogLevel  string       `toml:"log_level" yaml:"log_level"`
}

// CanvasConfig sizes the canvas of the demo scene.
type CanvasConfig struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
}

// TraceConfig controls trace encoding.
type TraceConfig struct {
	PageSize int `toml:"page_size" yaml:"page_size"`
	MaxChars int `toml:"max_chars" yaml:"max_chars"`
}

// ReplayConfig controls replay sessions.
type ReplayConfig struct {
	Host    string `toml:"host" yaml:"host"`
	Relaxed bool   `toml:"relaxed" yaml:"relaxed"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var c Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("config: parse error in %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("config: parse error in %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config: unsupported file type %q", ext)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Frames == 0 {
		c.Frames = recording.DefaultFrames
	}
	if c.EnumNames == nil {
		on := true
		c.EnumNames = &on
	}
	if c.Canvas.Width <= 0 {
		c.Canvas.Width = 64
	}
	if c.Canvas.Height <= 0 {
		c.Canvas.Height = 48
	}
	if c.Trace.PageSize <= 0 {
		c.Trace.PageSize = trace.DefaultPageSize
	}
	if c.Trace.MaxChars <= 0 {
		c.Trace.MaxChars = trace.MaxChars
	}
	if c.Replay.Host == "" {
		c.Replay.Host = "softgl"
	}
	if c.Archive == "" {
		c.Archive = "glrr.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports settings that no default can repair.
func (c *Config) Validate() error {
	if c.Frames < recording.Unbounded {
		return fmt.Errorf("frames must be positive or %d, got %d", recording.Unbounded, c.Frames)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// SessionOptions returns the recording options selected by c.
func (c *Config) SessionOptions() []recording.Option {
	return []recording.Option{recording.WithEnumNames(*c.EnumNames)}
}

// TraceOptions returns the encoding options selected by c.
func (c *Config) TraceOptions() []trace.Option {
	return []trace.Option{
		trace.WithPageSize(c.Trace.PageSize),
		trace.WithMaxChars(c.Trace.MaxChars),
	}
}

// ReplayOptions returns the replay session options selected by c.
func (c *Config) ReplayOptions() []replay.Option {
	if c.Replay.Relaxed {
		return []replay.Option{replay.WithRelaxedRemap()}
	}
	return nil
}
