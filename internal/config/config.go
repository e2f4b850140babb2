package config

import (
	"fmt"
	"os"
	"time"

	"github.com/me/disksched/pkg/model"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds configuration for the disksched server.
type ServerConfig struct {
	Addr             string        `yaml:"addr"`              // Listen address (default ":8080")
	LogLevel         string        `yaml:"log_level"`         // Log level: debug, info, warn, error
	LogFormat        string        `yaml:"log_format"`        // Log format: text, json
	TotalTracks      int           `yaml:"total_tracks"`      // Cylinders on the simulated disk
	InitialHead      int           `yaml:"initial_head"`      // Head position of a fresh workspace
	StepInterval     time.Duration `yaml:"step_interval"`     // Delay between animation steps
	DefaultAlgorithm string        `yaml:"default_algorithm"` // fcfs, sstf, scan, cscan
	DefaultDirection string        `yaml:"default_direction"` // left, right
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:             ":8080",
		LogLevel:         "info",
		LogFormat:        "text",
		TotalTracks:      model.DefaultTotalTracks,
		InitialHead:      int(model.DefaultHead),
		StepInterval:     time.Second,
		DefaultAlgorithm: string(model.AlgorithmFCFS),
		DefaultDirection: string(model.DirectionRight),
	}
}

// LoadFile overlays the YAML document at path onto cfg. Keys missing from
// the file keep their current values.
func LoadFile(path string, cfg *ServerConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration describes a usable disk.
func (c ServerConfig) Validate() error {
	if c.TotalTracks <= 0 {
		return fmt.Errorf("total_tracks must be positive, got %d", c.TotalTracks)
	}
	if c.InitialHead < 0 || c.InitialHead >= c.TotalTracks {
		return fmt.Errorf("initial_head %d outside [0, %d)", c.InitialHead, c.TotalTracks)
	}
	if c.StepInterval < 0 {
		return fmt.Errorf("step_interval must not be negative")
	}
	if _, err := model.ParseAlgorithm(c.DefaultAlgorithm); err != nil {
		return fmt.Errorf("default_algorithm: %w", err)
	}
	if _, err := model.ParseDirection(c.DefaultDirection); err != nil {
		return fmt.Errorf("default_direction: %w", err)
	}
	return nil
}
