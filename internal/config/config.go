// Package config loads ngscaffold.yaml, the optional per-project settings
// file. A missing file yields the defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	scerrors "ngscaffold/internal/errors"
	"ngscaffold/pkg/choices"
)

// DefaultFile is the config file name looked up in the project root.
const DefaultFile = "ngscaffold.yaml"

// Config holds generator settings.
type Config struct {
	// AppPath is the application source directory (default "app").
	AppPath string `yaml:"app_path"`

	// TestPath is the test directory (default "test").
	TestPath string `yaml:"test_path"`

	// Marker is the line scripts are inserted above (default "<!-- endbuild -->").
	Marker string `yaml:"marker"`

	// ScriptsBlock selects which build block receives generated script tags
	// (default "scripts/scripts.js").
	ScriptsBlock string `yaml:"scripts_block"`

	// AppSuffix is appended to the angular module name. Nil means "App".
	AppSuffix *string `yaml:"app_suffix,omitempty"`

	// Answers, when set, are used instead of prompting.
	Answers *choices.Choices `yaml:"answers,omitempty"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.AppPath == "" {
		c.AppPath = "app"
	}
	if c.TestPath == "" {
		c.TestPath = "test"
	}
	if c.Marker == "" {
		c.Marker = "<!-- endbuild -->"
	}
	if c.ScriptsBlock == "" {
		c.ScriptsBlock = "scripts/scripts.js"
	}
}

// Suffix returns the effective app suffix.
func (c *Config) Suffix() string {
	if c.AppSuffix == nil {
		return "App"
	}
	return *c.AppSuffix
}

// Validate checks that paths stay inside the project.
func (c *Config) Validate() error {
	for name, p := range map[string]string{"app_path": c.AppPath, "test_path": c.TestPath} {
		if filepath.IsAbs(p) {
			return scerrors.New(scerrors.EInvalidConfig, fmt.Sprintf("%s must be relative: %s", name, p))
		}
		if clean := filepath.Clean(p); clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return scerrors.New(scerrors.EInvalidConfig, fmt.Sprintf("%s escapes the project: %s", name, p))
		}
	}
	if strings.ContainsAny(c.Marker, "\r\n") {
		return scerrors.New(scerrors.EInvalidConfig, "marker must be a single line")
	}
	return nil
}

// Load reads the config at path. A missing file is not an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, scerrors.WrapPath(scerrors.EFileUnreadable, "cannot read config", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML config data and applies defaults.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, scerrors.Wrap(scerrors.EInvalidConfig, "parsing config", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Answers != nil {
		c.Answers.Normalize()
	}
	return &c, nil
}

// Save writes c as YAML to path.
func Save(path string, c *Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return scerrors.WrapPath(scerrors.EWriteFailure, "cannot write config", path, err)
	}
	return nil
}
