package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"LocalPaint/internal/state"
)

// Environment variables read by FromEnv.
const (
	EnvWidth  = "LOCALPAINT_WIDTH"
	EnvHeight = "LOCALPAINT_HEIGHT"
	EnvSize   = "LOCALPAINT_SIZE"
	EnvRemote = "LOCALPAINT_REMOTE"
	EnvMDNS   = "LOCALPAINT_MDNS"
)

// Config holds the application configuration.
type Config struct {
	Width     int
	Height    int
	BrushSize int

	// RemoteAddr is the listen address of the remote tool panel. Empty
	// disables it.
	RemoteAddr string
	// Advertise publishes the remote panel over mDNS.
	Advertise bool
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Width:     1024,
		Height:    768,
		BrushSize: state.DefaultBrushSize,
	}
}

// Load returns the defaults overlaid with the process environment.
func Load() (*Config, error) {
	return FromEnv(os.LookupEnv)
}

// FromEnv returns the defaults overlaid with whatever lookup finds.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := New()

	ints := []struct {
		key string
		dst *int
		min int
	}{
		{EnvWidth, &cfg.Width, 1},
		{EnvHeight, &cfg.Height, 1},
		{EnvSize, &cfg.BrushSize, 1},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.key, err)
		}
		if n < f.min {
			return nil, fmt.Errorf("%s: %d is below %d", f.key, n, f.min)
		}
		*f.dst = n
	}

	if v, ok := lookup(EnvRemote); ok && v != "" {
		if _, _, err := net.SplitHostPort(v); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvRemote, err)
		}
		cfg.RemoteAddr = v
	}

	if v, ok := lookup(EnvMDNS); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvMDNS, err)
		}
		cfg.Advertise = b
	}
	return cfg, nil
}
