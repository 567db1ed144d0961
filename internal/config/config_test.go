package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5.0, cfg.Drive.Speed)
	assert.Equal(t, 5.0, cfg.Drive.TurnStep)
	assert.Equal(t, 15.0, cfg.Drive.WheelStep)
	assert.Equal(t, [2]float64{270, 170}, cfg.Drive.DefaultPosition)
	assert.Equal(t, []string{"ArrowDown"}, cfg.Keys.Inert)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
drive:
  speed: 8
keys:
  forward: w
window:
  title: Test
`))
	require.NoError(t, err)

	assert.Equal(t, 8.0, cfg.Drive.Speed)
	assert.Equal(t, 15.0, cfg.Drive.WheelStep)
	assert.Equal(t, "w", cfg.Keys.Forward)
	assert.Equal(t, "ArrowLeft", cfg.Keys.TurnLeft)
	assert.Equal(t, "Test", cfg.Window.Title)
	assert.Equal(t, 960, cfg.Window.Width)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse(strings.NewReader("drive:\n  speed: -1\nwindow:\n  width: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drive.speed")
	assert.Contains(t, err.Error(), "window size")

	_, err = Parse(strings.NewReader("keys:\n  turn_left: \"\"\n"))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("drive: [1, 2"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene: custom.yaml\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom.yaml", cfg.Scene)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
