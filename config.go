package claylake

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultTitle  = "Clay Lake"
	defaultWidth  = 360
	defaultHeight = 640
)

// RunConfig configures the window and the scene created by Run. Zero values
// mean "use the default".
type RunConfig struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	ShowFPS       bool   `yaml:"show_fps"`
	Debug         bool   `yaml:"debug"`
	ScreenshotDir string `yaml:"screenshot_dir"`
	// Script is the path of a JSON capture script to play on start.
	Script string `yaml:"script"`
}

// withDefaults fills unset fields. When only one window dimension is given
// the other follows the 9:16 portrait ratio.
func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	switch {
	case c.Width <= 0 && c.Height <= 0:
		c.Width, c.Height = defaultWidth, defaultHeight
	case c.Width <= 0:
		c.Width = max(1, int(math.Round(float64(c.Height)*defaultWidth/defaultHeight)))
	case c.Height <= 0:
		c.Height = max(1, int(math.Round(float64(c.Width)*defaultHeight/defaultWidth)))
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = defaultScreenshotDir
	}
	return c
}

// LoadRunConfig parses a YAML run config. Unset fields keep their zero
// values; Run applies defaults.
func LoadRunConfig(data []byte) (RunConfig, error) {
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parse run config: %w", err)
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return RunConfig{}, fmt.Errorf("parse run config: negative window size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// LoadRunConfigFile reads and parses the YAML run config at path.
func LoadRunConfigFile(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("read run config: %w", err)
	}
	return LoadRunConfig(data)
}
