// Package config holds the tunables of the sensor robot sandbox.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration file.
type Config struct {
	// Scene is a path to a scene description. Empty selects the built-in scene.
	Scene     string    `yaml:"scene"`
	Drive     Drive     `yaml:"drive"`
	Keys      Keys      `yaml:"keys"`
	Window    Window    `yaml:"window"`
	KeyRepeat KeyRepeat `yaml:"key_repeat"`
}

// Drive holds the simulation driver constants.
type Drive struct {
	Speed           float64    `yaml:"speed"`      // px per forward key event
	TurnStep        float64    `yaml:"turn_step"`  // degrees per turn key event
	WheelStep       float64    `yaml:"wheel_step"` // degrees of wheel spin per forward key event
	DefaultPosition [2]float64 `yaml:"default_position"`
}

// Keys is the supported key set. Keys listed in Inert are recognised
// (their default action is suppressed) but have no effect.
type Keys struct {
	Forward   string   `yaml:"forward"`
	TurnLeft  string   `yaml:"turn_left"`
	TurnRight string   `yaml:"turn_right"`
	Inert     []string `yaml:"inert"`
}

// Window configures the host window.
type Window struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Title      string  `yaml:"title"`
	ScrollStep float64 `yaml:"scroll_step"`
}

// KeyRepeat emulates keyboard auto-repeat, in ticks.
type KeyRepeat struct {
	Delay    int `yaml:"delay"`
	Interval int `yaml:"interval"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Drive: Drive{
			Speed:           5,
			TurnStep:        5,
			WheelStep:       15,
			DefaultPosition: [2]float64{270, 170},
		},
		Keys: Keys{
			Forward:   "ArrowUp",
			TurnLeft:  "ArrowLeft",
			TurnRight: "ArrowRight",
			Inert:     []string{"ArrowDown"},
		},
		Window: Window{
			Width:      960,
			Height:     640,
			Title:      "Sensor Robot Designer",
			ScrollStep: 40,
		},
		KeyRepeat: KeyRepeat{
			Delay:    30,
			Interval: 3,
		},
	}
}

// Load reads a YAML configuration file on top of the defaults.
func Load(filePath string) (Config, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	cfg, err := Parse(file)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", filePath, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r on top of the defaults and validates the result.
func Parse(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	var errs []error
	if c.Drive.Speed <= 0 {
		errs = append(errs, fmt.Errorf("drive.speed must be positive, got %g", c.Drive.Speed))
	}
	if c.Drive.TurnStep <= 0 {
		errs = append(errs, fmt.Errorf("drive.turn_step must be positive, got %g", c.Drive.TurnStep))
	}
	if c.Keys.Forward == "" || c.Keys.TurnLeft == "" || c.Keys.TurnRight == "" {
		errs = append(errs, errors.New("keys: forward, turn_left and turn_right must all be bound"))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.KeyRepeat.Delay < 0 || c.KeyRepeat.Interval <= 0 {
		errs = append(errs, errors.New("key_repeat: delay must be >= 0 and interval > 0"))
	}
	return errors.Join(errs...)
}
