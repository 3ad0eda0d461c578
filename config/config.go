package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// validate is a singleton validator instance
	validate = validator.New()
)

// Config is the root of the settings file.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// GridConfig selects the grid. Path wins unless the caller asks for an
// empty interactive grid, which is Rows×Cols.
type GridConfig struct {
	Path string `yaml:"path"`
	Rows int    `yaml:"rows" validate:"min=1,max=1000"`
	Cols int    `yaml:"cols" validate:"min=1,max=1000"`
}

// DisplayConfig sizes cells on screen and throttles the search animation.
// Glyphs prints each cell's text glyph on top of its colour.
type DisplayConfig struct {
	CellWidth    int  `yaml:"cell_width" validate:"min=1,max=8"`
	CellHeight   int  `yaml:"cell_height" validate:"min=1,max=4"`
	MaxFrameRate int  `yaml:"max_frame_rate" validate:"min=1,max=1000"`
	Glyphs       bool `yaml:"glyphs"`
}

// LogConfig configures the slog handler. An empty File discards logs,
// since the terminal UI owns stdout.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Grid:    GridConfig{Rows: 20, Cols: 40},
		Display: DisplayConfig{CellWidth: 2, CellHeight: 1, MaxFrameRate: 60},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks every field against its tag constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// FrameInterval is the delay between two search steps on screen.
func (c Config) FrameInterval() time.Duration {
	if c.Display.MaxFrameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Display.MaxFrameRate)
}

// SlogLevel maps Log.Level onto slog. Unknown names fall back to info.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	e := validationErrs[0]
	field := e.Namespace()
	switch e.Tag() {
	case "min":
		return fmt.Errorf("%w: %s must be at least %s", ErrInvalidConfig, field, e.Param())
	case "max":
		return fmt.Errorf("%w: %s must not exceed %s", ErrInvalidConfig, field, e.Param())
	case "oneof":
		return fmt.Errorf("%w: %s must be one of [%s]", ErrInvalidConfig, field, e.Param())
	default:
		return fmt.Errorf("%w: %s failed %s", ErrInvalidConfig, field, e.Tag())
	}
}
