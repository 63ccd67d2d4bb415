// Package config loads the sandbox settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/strata/engine"
	"github.com/lixenwraith/strata/logging"
	"github.com/lixenwraith/strata/platform"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

const (
	minFrameRate = 1
	maxFrameRate = 240
)

// Color is an RGB color written as "#rrggbb" in YAML
type Color platform.RGB

// String returns the "#rrggbb" form
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses "#rrggbb" (leading '#' optional)
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// Log configures the core and app loggers
type Log struct {
	Level string `yaml:"level"`
	// File receives log output; empty discards it, since stdout belongs to the screen
	File string `yaml:"file,omitempty"`
}

// Audio configures click feedback
type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

// Trace configures the event recorder
type Trace struct {
	// File enables recording when set
	File string `yaml:"file,omitempty"`
	// Types restricts recording to these event type names; empty records all
	Types []string `yaml:"types,omitempty"`
}

// Config is the sandbox configuration file
type Config struct {
	Title      string `yaml:"title"`
	FrameRate  int    `yaml:"frame_rate"`
	ClearColor Color  `yaml:"clear_color"`
	Mouse      bool   `yaml:"mouse"`
	Inspector  bool   `yaml:"inspector"`

	Log   Log   `yaml:"log"`
	Audio Audio `yaml:"audio"`
	Trace Trace `yaml:"trace"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Title:      "strata sandbox",
		FrameRate:  60,
		ClearColor: Color(engine.DefaultConfig().ClearColor),
		Mouse:      true,
		Inspector:  true,
		Log: Log{
			Level: "info",
		},
		Audio: Audio{
			Enabled:    false,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range setting, each wrapping ErrInvalid
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	if c.FrameRate < minFrameRate || c.FrameRate > maxFrameRate {
		invalid("frame_rate %d outside [%d, %d]", c.FrameRate, minFrameRate, maxFrameRate)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		invalid("log.level: %v", err)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		invalid("audio.volume %g outside [0, 1]", c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		invalid("audio.sample_rate %d must be positive", c.Audio.SampleRate)
	}
	for _, name := range c.Trace.Types {
		if strings.TrimSpace(name) == "" {
			invalid("trace.types contains an empty name")
		}
	}
	return errors.Join(errs...)
}

// LogLevel returns the parsed log level; Validate guarantees it parses
func (c Config) LogLevel() logging.Level {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logging.LevelInfo
	}
	return level
}

// EngineConfig derives the runner settings
func (c Config) EngineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	if c.FrameRate > 0 {
		cfg.FrameInterval = time.Second / time.Duration(c.FrameRate)
	}
	cfg.ClearColor = platform.RGB(c.ClearColor)
	return cfg
}

// Marshal renders the configuration as YAML
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}
