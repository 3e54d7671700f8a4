// Package config loads and saves shapeshift settings as YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/shapeshift.yaml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Window settings.
type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
	TargetFPS int    `yaml:"target_fps"`
}

// Orbit settings for the camera controls.
type Orbit struct {
	EnableDamping bool    `yaml:"enable_damping"`
	DampingFactor float32 `yaml:"damping_factor"`
	EnablePan     bool    `yaml:"enable_pan"`
	RotateSpeed   float32 `yaml:"rotate_speed"`
	ZoomSpeed     float32 `yaml:"zoom_speed"`
	MinDistance   float32 `yaml:"min_distance"`
	MaxDistance   float32 `yaml:"max_distance"`
}

// Facing settings for wall detection.
type Facing struct {
	Threshold    float32 `yaml:"threshold"`
	OpacityScale float32 `yaml:"opacity_scale"`
}

// Effects settings. An empty Dir disables source overrides and hot reload.
type Effects struct {
	Dir   string `yaml:"dir,omitempty"`
	Watch bool   `yaml:"watch"`
}

// Log settings. An empty File logs to stderr only.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// Debug overlay settings.
type Debug struct {
	ShowFPS        bool `yaml:"show_fps"`
	ShowActiveWall bool `yaml:"show_active_wall"`
}

// Config is the full settings file.
type Config struct {
	Window  Window  `yaml:"window"`
	Orbit   Orbit   `yaml:"orbit"`
	Facing  Facing  `yaml:"facing"`
	Effects Effects `yaml:"effects"`
	Log     Log     `yaml:"log"`
	Debug   Debug   `yaml:"debug"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "shapeshift",
			Resizable: true,
			TargetFPS: 60,
		},
		Orbit: Orbit{
			EnableDamping: true,
			DampingFactor: 0.05,
			EnablePan:     false,
			RotateSpeed:   1,
			ZoomSpeed:     1,
			MinDistance:   2,
			MaxDistance:   30,
		},
		Facing: Facing{
			Threshold:    0.9,
			OpacityScale: 2,
		},
		Effects: Effects{Watch: true},
		Log:     Log{Level: "info", File: "logs/shapeshift.log"},
	}
}

// Load reads path over the defaults. A missing file returns Default() without error; a file
// that does not parse or validate returns an error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Default(), err
	}
	return c, nil
}

// Save writes c to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Validate rejects settings the scene cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TargetFPS < 0:
		return fmt.Errorf("%w: target_fps %d", ErrInvalid, c.Window.TargetFPS)
	case c.Orbit.DampingFactor <= 0 || c.Orbit.DampingFactor > 1:
		return fmt.Errorf("%w: damping_factor %v not in (0, 1]", ErrInvalid, c.Orbit.DampingFactor)
	case c.Orbit.MinDistance <= 0 || c.Orbit.MaxDistance < c.Orbit.MinDistance:
		return fmt.Errorf("%w: distance range [%v, %v]", ErrInvalid, c.Orbit.MinDistance, c.Orbit.MaxDistance)
	case c.Facing.Threshold <= -1 || c.Facing.Threshold >= 1:
		return fmt.Errorf("%w: threshold %v not in (-1, 1)", ErrInvalid, c.Facing.Threshold)
	case c.Facing.OpacityScale <= 0:
		return fmt.Errorf("%w: opacity_scale %v", ErrInvalid, c.Facing.OpacityScale)
	}
	return nil
}
