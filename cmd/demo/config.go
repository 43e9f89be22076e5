package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"canopy"
)

// config is the demo's tunable surface, read from demo.toml when present.
type config struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Accent     string `toml:"accent"`
	LogFile    string `toml:"log_file"`
}

func defaultConfig() config {
	return config{
		Foreground: "white",
		Background: "black",
		Accent:     "green",
		LogFile:    "demo.log",
	}
}

// loadConfig reads path, falling back to defaults when the file is missing.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// parseColor maps a configured color name to its terminal color.
func parseColor(name string) (canopy.Color, error) {
	colors := map[string]canopy.Color{
		"black":   canopy.ColorBlack,
		"red":     canopy.ColorRed,
		"green":   canopy.ColorGreen,
		"yellow":  canopy.ColorYellow,
		"blue":    canopy.ColorBlue,
		"magenta": canopy.ColorMagenta,
		"cyan":    canopy.ColorCyan,
		"white":   canopy.ColorWhite,
	}
	c, ok := colors[name]
	if !ok {
		return canopy.ColorNone, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
