// Package config resolves tool settings from, in increasing priority, built
// in defaults, an optional YAML config file and environment variables. A
// .env file in the working directory is folded into the environment first.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables recognized by the tool. OTPARTS_CONFIG points at an
// alternative config file.
const (
	EnvOutput    = "OTPARTS_OUTPUT"
	EnvLibrary   = "OTPARTS_LIB"
	EnvOverwrite = "OTPARTS_OVERWRITE"
	EnvConfig    = "OTPARTS_CONFIG"
)

// Config holds the resolved settings.
type Config struct {
	// OutputDir is the directory the library structure is created in.
	OutputDir string `yaml:"output"`
	// Library is the base name of the symbol library, .pretty and
	// .3dshapes artifacts.
	Library string `yaml:"library"`
	// Overwrite replaces existing records and files on conversion.
	Overwrite bool `yaml:"overwrite"`
}

// Load resolves the configuration. A missing config file is fine; a present
// but unparsable one is an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv(EnvConfig)
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".config", "otparts", "config.yaml")
		}
	}
	return load(path, os.Getenv)
}

func load(path string, getenv func(string) string) (*Config, error) {
	cfg := &Config{
		OutputDir: defaultOutputDir(),
		Library:   "otparts",
		Overwrite: true,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config file %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if v := getenv(EnvOutput); v != "" {
		cfg.OutputDir = v
	}
	if v := getenv(EnvLibrary); v != "" {
		cfg.Library = v
	}
	if v := getenv(EnvOverwrite); v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%s=%q: %w", EnvOverwrite, v, err)
		}
		cfg.Overwrite = b
	}

	if cfg.Library == "" {
		return nil, fmt.Errorf("library name must not be empty")
	}
	return cfg, nil
}

func defaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "otparts"
	}
	return filepath.Join(home, "Documents", "KiCad", "otparts")
}
