// Package config loads phlint configuration files.
//
// Configuration is a YAML document, all fields are optional:
//
//	rules:
//	  enable: [QualifiedNamesOnlyForClassName]
//	  disable: []
//	exclude: [vendor, storage, "*.blade.php"]
//	extensions: [.php, .phtml]
//	format: text
//	workers: 8
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/phlint/internal/lintrules"
	"github.com/sirkon/phlint/internal/report"
)

// DefaultPath is looked up in the working directory when no path is given.
const DefaultPath = ".phlint.yaml"

// Config of a linter run.
type Config struct {
	Rules      Rules         `yaml:"rules"`
	Exclude    []string      `yaml:"exclude"`
	Extensions []string      `yaml:"extensions"`
	Format     report.Format `yaml:"format"`
	Workers    int           `yaml:"workers"`
}

// Rules selects rules to run. Empty Enable means all known rules.
type Rules struct {
	Enable  []lintrules.Code `yaml:"enable"`
	Disable []lintrules.Code `yaml:"disable"`
}

// Default returns configuration used without a config file.
func Default() *Config {
	return &Config{
		Format: report.FormatText,
	}
}

// Load reads configuration from path. An empty path means DefaultPath, which
// is allowed to be missing.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes configuration. Unknown fields are errors.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	return cfg, nil
}

// Validate checks values decoding cannot check.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}

	for _, ext := range c.Extensions {
		if ext == "" || ext[0] != '.' {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}

	return nil
}
