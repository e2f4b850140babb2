package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultServerConfig(t *testing.T) {
	cfg := DefaultServerConfig()
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.TotalTracks != 200 || cfg.InitialHead != 50 {
		t.Errorf("disk = %d tracks, head %d", cfg.TotalTracks, cfg.InitialHead)
	}
	if cfg.StepInterval != time.Second {
		t.Errorf("StepInterval = %v", cfg.StepInterval)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disksched.yml")
	content := `addr: ":9090"
total_tracks: 500
initial_head: 250
step_interval: 250ms
default_algorithm: cscan
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultServerConfig()
	if err := LoadFile(path, &cfg); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.TotalTracks != 500 || cfg.InitialHead != 250 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.StepInterval != 250*time.Millisecond {
		t.Errorf("StepInterval = %v", cfg.StepInterval)
	}
	if cfg.DefaultAlgorithm != "cscan" {
		t.Errorf("DefaultAlgorithm = %q", cfg.DefaultAlgorithm)
	}
	// Unset keys keep defaults.
	if cfg.LogFormat != "text" || cfg.DefaultDirection != "right" {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	cfg := DefaultServerConfig()
	if err := LoadFile(filepath.Join(t.TempDir(), "nope.yml"), &cfg); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ServerConfig)
		want   string
	}{
		{"zero tracks", func(c *ServerConfig) { c.TotalTracks = 0 }, "total_tracks"},
		{"head past end", func(c *ServerConfig) { c.InitialHead = 200 }, "initial_head"},
		{"negative interval", func(c *ServerConfig) { c.StepInterval = -time.Second }, "step_interval"},
		{"bad algorithm", func(c *ServerConfig) { c.DefaultAlgorithm = "look" }, "default_algorithm"},
		{"bad direction", func(c *ServerConfig) { c.DefaultDirection = "up" }, "default_direction"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultServerConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want mention of %s", err, tt.want)
			}
		})
	}
}
