package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Balance Balance       `yaml:"balance"`
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	TargetFPS int32  `yaml:"target_fps"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	JSONFormat bool   `yaml:"json_format"`
}

func DefaultConfig() *Config {
	return &Config{
		Balance: Default(),
		Window: WindowConfig{
			Title:     "Blutton",
			Width:     800,
			Height:    800,
			TargetFPS: 60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func (w *WindowConfig) ApplyDefaults() {
	if w.Title == "" {
		w.Title = "Blutton"
	}
	if w.Width <= 0 {
		w.Width = 800
	}
	if w.Height <= 0 {
		w.Height = 800
	}
	if w.TargetFPS <= 0 {
		w.TargetFPS = 60
	}
}

func (c *Config) ApplyDefaults() {
	c.Window.ApplyDefaults()
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(b)
}

func Parse(b []byte) (*Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.ApplyDefaults()
	if err := c.Balance.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
