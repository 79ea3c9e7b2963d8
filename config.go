package touchlook

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables of a Looker and the example host.
type Config struct {
	Sensitivity Sensitivity `yaml:"sensitivity"`
	// PitchLimit clamps the head pitch to [-PitchLimit, +PitchLimit].
	// 0 leaves the pitch unbounded.
	PitchLimit float64 `yaml:"pitch_limit"`
	// Debug traces every touch event and orientation change at debug level.
	Debug        bool         `yaml:"debug"`
	MouseAsTouch bool         `yaml:"mouse_as_touch"`
	Logging      LogConfig    `yaml:"logging"`
	Window       WindowConfig `yaml:"window"`

	// Logger receives debug traces. Nil uses slog.Default.
	Logger *slog.Logger `yaml:"-"`
}

// WindowConfig sizes the example host window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Sensitivity: DefaultSensitivity(),
		Logging:     LogConfig{Level: "info", Format: "console"},
		Window:      WindowConfig{Title: "Look With Touch", Width: 640, Height: 480},
	}
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Sensitivity.Timestep <= 0 {
		errs = append(errs, fmt.Errorf("sensitivity.timestep must be positive, got %v", c.Sensitivity.Timestep))
	}
	if c.PitchLimit < 0 {
		errs = append(errs, fmt.Errorf("pitch_limit must not be negative, got %v", c.PitchLimit))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
