package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/menta2k/facecrop/pkg/types"
)

// Config holds the application configuration
type Config struct {
	Output      OutputConfig      `json:"output"`
	Composition CompositionConfig `json:"composition"`
	Detector    DetectorConfig    `json:"detector"`
}

// OutputConfig holds configuration for the written crops
type OutputConfig struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	Quality  int    `json:"quality"`
	Lossless bool   `json:"lossless"`
	Dir      string `json:"dir"`
	Suffix   string `json:"suffix"`
}

// CompositionConfig holds configuration for crop framing
type CompositionConfig struct {
	FacePercent int            `json:"face_percent"`
	Padding     *types.Padding `json:"padding,omitempty"`
	Portrait    bool           `json:"portrait"`
	FixGamma    bool           `json:"fix_gamma"`
}

// DetectorConfig holds configuration for face detection and batch processing
type DetectorConfig struct {
	CascadePath string `json:"cascade_path"`
	Workers     int    `json:"workers"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Width:   500,
			Height:  500,
			Format:  "jpg",
			Quality: 90,
			Dir:     "./output",
			Suffix:  "_face",
		},
		Composition: CompositionConfig{
			FacePercent: 50,
			Portrait:    true,
			FixGamma:    true,
		},
		Detector: DetectorConfig{
			CascadePath: "facefinder",
			Workers:     4,
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Output.Width < 1 || c.Output.Height < 1 {
		return fmt.Errorf("output dimensions must be positive")
	}

	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality must be between 1 and 100")
	}

	switch c.Output.Format {
	case "jpg", "jpeg", "png", "webp":
	default:
		return fmt.Errorf("output.format must be jpg, png or webp")
	}

	if c.Composition.FacePercent < 1 || c.Composition.FacePercent > 100 {
		return fmt.Errorf("composition.face_percent must be between 1 and 100")
	}

	if pad := c.Composition.Padding; pad != nil {
		if pad.Top < 1 || pad.Right < 1 || pad.Bottom < 1 || pad.Left < 1 {
			return fmt.Errorf("composition.padding values must all be positive")
		}
	}

	if c.Detector.CascadePath == "" {
		return fmt.Errorf("detector.cascade_path cannot be empty")
	}

	if c.Detector.Workers < 1 {
		return fmt.Errorf("detector.workers must be positive")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "facecrop", "config.json")
}
