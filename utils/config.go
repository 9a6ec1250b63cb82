package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var configValidate = validator.New()

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width" yaml:"width" validate:"gt=0"`
	Height              int           `json:"height" yaml:"height" validate:"gt=0"`
	Generations         int           `json:"generations" yaml:"generations" validate:"gte=0"`
	FrameRate           time.Duration `json:"frame_rate" yaml:"frame_rate" validate:"gte=0"`
	Boundary            string        `json:"boundary" yaml:"boundary" validate:"oneof=toroidal finite"`
	Pattern             string        `json:"pattern" yaml:"pattern" validate:"required"`
	Workers             int           `json:"workers" yaml:"workers" validate:"gte=0"`
	UseFramePool        bool          `json:"use_frame_pool" yaml:"use_frame_pool"`
	StopWhenStable      bool          `json:"stop_when_stable" yaml:"stop_when_stable"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold" validate:"gte=1"`
	AliveGlyph          string        `json:"alive_glyph" yaml:"alive_glyph" validate:"required"`
	DeadGlyph           string        `json:"dead_glyph" yaml:"dead_glyph" validate:"required"`
	Color               bool          `json:"color" yaml:"color"`
	ClearScreen         bool          `json:"clear_screen" yaml:"clear_screen"`
	LogLevel            string        `json:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns the classic 25x25 glider run
func DefaultConfig() Config {
	return Config{
		Width:               25,
		Height:              25,
		Generations:         10,
		FrameRate:           100 * time.Millisecond,
		Boundary:            "toroidal",
		Pattern:             "glider",
		Workers:             1,
		UseFramePool:        true,
		StopWhenStable:      false,
		StagnationThreshold: 3,
		AliveGlyph:          "■ ",
		DeadGlyph:           ". ",
		Color:               true,
		ClearScreen:         false,
		LogLevel:            "warn",
	}
}

// LoadConfig loads configuration from a JSON or YAML file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks every field against its constraints
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return errors.Wrap(err, "[Validate] invalid configuration")
	}
	return nil
}
