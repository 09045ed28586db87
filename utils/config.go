package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/rules"
)

// defaultDimension mirrors model.DefaultDimension; utils cannot import model
const defaultDimension = 32

// Config holds the configuration for the game
type Config struct {
	Dimension           int           `json:"dimension"`
	Variant             string        `json:"variant"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	Seed                int64         `json:"seed"`
	Random              bool          `json:"random"`
	Pattern             string        `json:"pattern"`
	LoadPath            string        `json:"load_path"`
	SavePath            string        `json:"save_path"`
	UseBufferPool       bool          `json:"use_buffer_pool"`
	LogLevel            string        `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Dimension:           defaultDimension,
		Variant:             rules.Life.String(),
		FrameRate:           100 * time.Millisecond,
		MaxGenerations:      0, // run until interrupted
		StagnationThreshold: 5,
		Seed:                time.Now().UnixNano(),
		UseBufferPool:       true,
		LogLevel:            "info",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate normalizes the config and returns the selected rule variant
func (c *Config) Validate() (rules.Variant, error) {
	if c.Dimension <= 0 {
		c.Dimension = defaultDimension
	}
	if c.FrameRate <= 0 {
		c.FrameRate = DefaultConfig().FrameRate
	}
	if c.StagnationThreshold < 0 {
		c.StagnationThreshold = 0
	}
	if c.Pattern != "" && c.LoadPath != "" {
		return rules.Life, errors.New("[Validate] pattern and load_path are mutually exclusive")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return rules.Life, errors.Wrap(err, "[Validate] log_level")
	}

	v, err := rules.ParseVariant(c.Variant)
	if err != nil {
		return rules.Life, errors.Wrap(err, "[Validate] variant")
	}
	return v, nil
}
