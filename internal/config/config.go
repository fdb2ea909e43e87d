// Package config provides configuration handling for dockergen.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dublyo/dockergen/internal/errors"
)

// EnvPrefix is the prefix of environment variables read by dockergen
const EnvPrefix = "DOCKERGEN_"

// Config represents the global dockergen configuration
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
}

// DefaultsConfig contains default generation settings
type DefaultsConfig struct {
	Port       string `yaml:"port"`
	Output     string `yaml:"output"` // empty means <dir>/Dockerfile
	Multistage bool   `yaml:"multistage"`
	Verbose    bool   `yaml:"verbose"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Port:       "3000",
			Multistage: true,
		},
	}
}

// SearchPaths returns the config file locations checked by Load, in order
func SearchPaths() []string {
	home, _ := os.UserHomeDir()
	paths := []string{
		".dockergen.yml",
		".dockergen.yaml",
	}
	if home != "" {
		paths = append(paths,
			filepath.Join(home, ".config", "dockergen", "config.yml"),
			filepath.Join(home, ".dockergen.yml"),
		)
	}
	return paths
}

// Load loads configuration from the default locations, then the .env file
// in the working directory, then the process environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := cfg.loadFromFile(path); err != nil {
				return nil, err
			}
			break
		}
	}

	if err := cfg.loadFromEnvFile(".env"); err != nil {
		return nil, err
	}
	if err := cfg.apply(environ()); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific file instead of the
// search paths. The .env file and environment still apply on top.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrConfigNotFound, path)
	}
	if err := cfg.loadFromFile(path); err != nil {
		return nil, err
	}
	if err := cfg.loadFromEnvFile(".env"); err != nil {
		return nil, err
	}
	if err := cfg.apply(environ()); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrConfigInvalid, path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrConfigInvalid, path, err)
	}
	return nil
}

// loadFromEnvFile applies DOCKERGEN_* keys from a dotenv file without
// touching the process environment. A missing file is not an error.
func (c *Config) loadFromEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrConfigInvalid, path, err)
	}
	return c.apply(vars)
}

// apply overrides fields from DOCKERGEN_* variables
func (c *Config) apply(vars map[string]string) error {
	if v, ok := vars[EnvPrefix+"PORT"]; ok && v != "" {
		c.Defaults.Port = v
	}
	if v, ok := vars[EnvPrefix+"OUTPUT"]; ok && v != "" {
		c.Defaults.Output = v
	}
	if v, ok := vars[EnvPrefix+"MULTISTAGE"]; ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sMULTISTAGE=%q", errors.ErrConfigInvalid, EnvPrefix, v)
		}
		c.Defaults.Multistage = b
	}
	if v, ok := vars[EnvPrefix+"VERBOSE"]; ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sVERBOSE=%q", errors.ErrConfigInvalid, EnvPrefix, v)
		}
		c.Defaults.Verbose = b
	}
	return nil
}

func environ() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			vars[k] = v
		}
	}
	return vars
}

// Save writes the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
