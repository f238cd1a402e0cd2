// Package config provides layered configuration for the puzzle parameters
// using koanf. Priority: environment variables (AOC_) > YAML file > defaults.
//
// Keys are "dayNN.<param>". Environment variables map with a double
// underscore between levels: AOC_DAY15__ROW=10 sets day15.row.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/aoc2022/puzzle"
)

const (
	// EnvPrefix is the prefix of environment overrides.
	EnvPrefix = "AOC_"

	// DefaultConfigPath is read when no --config flag is given and it exists.
	DefaultConfigPath = "aoc2022.yml"
)

// Config is the loaded parameter tree.
type Config struct {
	k *koanf.Koanf
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ConfigPath is an explicit YAML file; it must exist when set.
	ConfigPath string
	// Environ overrides os.Environ, for tests.
	Environ []string
}

// Load builds the configuration from defaults, an optional YAML file and
// the environment, then validates the values.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")
	loadDefaults(k)

	if err := loadFileConfig(k, opts.ConfigPath); err != nil {
		return nil, err
	}
	if err := loadEnvironmentConfig(k, opts.Environ); err != nil {
		return nil, err
	}
	if err := validateValues(k.All(), "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &Config{k: k}, nil
}

func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		_ = k.Set(key, value)
	}
}

func loadFileConfig(k *koanf.Koanf, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		return nil
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := ValidateYAMLSyntaxFromBytes(data, path); err != nil {
		return fmt.Errorf("validating YAML syntax: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}

	return nil
}

func loadEnvironmentConfig(k *koanf.Koanf, environ []string) error {
	if environ == nil {
		if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
			return fmt.Errorf("failed to load environment config: %w", err)
		}
		return nil
	}
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		if err := k.Set(envTransform(name), value); err != nil {
			return fmt.Errorf("failed to set %s: %w", name, err)
		}
	}

	return nil
}

// envTransform converts AOC_DAY15__ROW to day15.row.
func envTransform(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// Day returns the parameters of one day.
func (c *Config) Day(n int) puzzle.Params {
	return c.k.Cut(fmt.Sprintf("day%02d", n))
}

// All returns the flattened key/value map.
func (c *Config) All() map[string]interface{} {
	return c.k.All()
}
