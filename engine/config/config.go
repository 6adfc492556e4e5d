package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jfehr/glint/engine/colors"
)

// Config holds the window and engine settings. All fields have working
// defaults; a config file only overrides what it names.
type Config struct {
	Title      string       `yaml:"title"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	VSync      bool         `yaml:"vsync"`
	ClearColor colors.Color `yaml:"clear_color"`
	LogFile    string       `yaml:"log_file"`
	ShaderDir  string       `yaml:"shader_dir"`
}

// Default returns the settings the demo ships with.
func Default() Config {
	return Config{
		Title:      "glint",
		Width:      800,
		Height:     600,
		VSync:      true,
		ClearColor: colors.LightSteelBlue,
		LogFile:    "engine.log",
		ShaderDir:  "assets/shaders",
	}
}

// Load reads a YAML config file on top of the defaults. A missing file is
// not an error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	if cfg.Width < 1 || cfg.Height < 1 {
		return cfg, fmt.Errorf("config %q: window size %dx%d is invalid", path, cfg.Width, cfg.Height)
	}
	return cfg, nil
}
