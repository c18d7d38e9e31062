package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional poly.yaml configuration file.
type Config struct {
	// Name is the node name; defaults depend on the surface (repl/server).
	Name string `yaml:"name"`
	// Prelude is a module file loaded with an empty prefix at startup.
	Prelude string `yaml:"prelude"`
	// Addr is the serve listen address.
	Addr string `yaml:"addr"`
	// InPrompt and OutPrompt override the REPL prompts.
	InPrompt  string `yaml:"in_prompt"`
	OutPrompt string `yaml:"out_prompt"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Name:     "main",
		Prelude:  "prelude" + SourceFileExt,
		Addr:     "0.0.0.0:8000",
		InPrompt: ">> ",
	}
}

// Load reads a YAML config file over the defaults. A missing path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
