package learngl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds window and context settings shared by the examples.
type Config struct {
	Width      int        `toml:"width" yaml:"width"`
	Height     int        `toml:"height" yaml:"height"`
	Title      string     `toml:"title" yaml:"title"`
	GLMajor    int        `toml:"gl_major" yaml:"gl_major"`
	GLMinor    int        `toml:"gl_minor" yaml:"gl_minor"`
	VSync      bool       `toml:"vsync" yaml:"vsync"`
	Wireframe  bool       `toml:"wireframe" yaml:"wireframe"`
	DepthTest  bool       `toml:"depth_test" yaml:"depth_test"`
	Hidden     bool       `toml:"hidden" yaml:"hidden"`
	ClearColor [4]float32 `toml:"clear_color" yaml:"clear_color"`
	Verbose    bool       `toml:"verbose" yaml:"verbose"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		Title:      "Hello OpenGL",
		GLMajor:    4,
		GLMinor:    1,
		VSync:      true,
		ClearColor: [4]float32{0.2, 0.3, 0.3, 1},
	}
}

// LoadConfig reads a TOML file, or a YAML file when the extension is .yaml
// or .yml, over the defaults. Keys missing from the file keep their default
// value. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config %q: %w", path, err)
	}
	if err := unmarshalConfig(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func unmarshalConfig(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return toml.Unmarshal(data, cfg)
	}
}

// Validate rejects settings no window could be created with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 3) {
		return fmt.Errorf("OpenGL %d.%d is too old, need 3.3 core or newer", c.GLMajor, c.GLMinor)
	}
	return nil
}
