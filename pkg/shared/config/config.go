package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// DefaultConfigFile is picked up from the working directory when no --config is given.
const DefaultConfigFile = ".envlint.yml"

const envSkipChecks = "ENVLINT_SKIP_CHECKS"

type Config struct {
	Logger    Logger   `yaml:"logger"`
	Checks    Checks   `yaml:"checks"`
	Exclude   []string `yaml:"exclude"`
	Recursive bool     `yaml:"recursive"`
	Output    Output   `yaml:"output"`
}

type Logger struct {
	Level       string `yaml:"level" validate:"omitempty,oneof=TRACE DEBUG INFO WARN ERROR trace debug info warn error"`
	DisableTime *bool  `yaml:"disable_time"`
	JSONFormat  *bool  `yaml:"json_format"`
}

type Checks struct {
	Skip []string `yaml:"skip" validate:"dive,required"`
}

type Output struct {
	Format string `yaml:"format" validate:"omitempty,oneof=text json sarif"`
	Color  *bool  `yaml:"color"`
	Quiet  bool   `yaml:"quiet"`
}

func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	d.SetStrict(true)
	// An empty file decodes to io.EOF and leaves the defaults untouched.
	if err := d.Decode(data); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// LoadConfig reads the YAML configuration. An empty path falls back to
// DefaultConfigFile when it exists and to built-in defaults otherwise.
// Environment overrides are applied on top.
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{}

	if configPath == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			configPath = DefaultConfigFile
		}
	}
	if configPath != "" {
		if err := LoadYAML(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %q: %w", configPath, err)
		}
	}

	applyEnvironment(cfg)
	return cfg, nil
}

// applyEnvironment appends checks listed in ENVLINT_SKIP_CHECKS to the skip list.
func applyEnvironment(cfg *Config) {
	raw := os.Getenv(envSkipChecks)
	if raw == "" {
		return
	}
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			cfg.Checks.Skip = append(cfg.Checks.Skip, name)
		}
	}
}
