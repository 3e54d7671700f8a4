package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, float32(0.9), c.Facing.Threshold)
	assert.Equal(t, float32(2), c.Facing.OpacityScale)
	assert.True(t, c.Orbit.EnableDamping)
	assert.Equal(t, float32(0.05), c.Orbit.DampingFactor)
	assert.False(t, c.Orbit.EnablePan)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "shapeshift.yaml")
	c := Default()
	c.Window.Width = 1920
	c.Window.Height = 1080
	c.Effects.Dir = "shaders"
	c.Debug.ShowFPS = true
	c.Log.Level = "debug"

	require.NoError(t, Save(path, c))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapeshift.yaml")
	require.NoError(t, os.WriteFile(path, []byte("facing:\n  threshold: 0.8\ndebug:\n  show_fps: true\n"), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(0.8), c.Facing.Threshold)
	assert.Equal(t, float32(2), c.Facing.OpacityScale)
	assert.True(t, c.Debug.ShowFPS)
	assert.Equal(t, 1280, c.Window.Width)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.yaml")
	require.NoError(t, os.WriteFile(garbage, []byte("window: [1, 2"), 0644))
	c, err := Load(garbage)
	assert.Error(t, err)
	assert.Equal(t, Default(), c)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("window:\n  width: 0\n"), 0644))
	_, err = Load(invalid)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"height":    func(c *Config) { c.Window.Height = -1 },
		"fps":       func(c *Config) { c.Window.TargetFPS = -5 },
		"damping":   func(c *Config) { c.Orbit.DampingFactor = 0 },
		"distance":  func(c *Config) { c.Orbit.MaxDistance = 1 },
		"threshold": func(c *Config) { c.Facing.Threshold = 1 },
		"opacity":   func(c *Config) { c.Facing.OpacityScale = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	c := Default()
	c.Window.Width = 0
	path := filepath.Join(t.TempDir(), "x.yaml")
	assert.ErrorIs(t, Save(path, c), ErrInvalid)
	assert.NoFileExists(t, path)
}
