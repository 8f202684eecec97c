package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EmbeddedSource is reported as the source when no config file was found.
const EmbeddedSource = "<embedded>"

// Load loads the flappy configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
// The second return value is the path the config came from, or EmbeddedSource.
func Load(customPath string) (FlappyConfig, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	candidates := []string{userConfigPath("flappy.yaml"), filepath.Join("configs", "flappy.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := LoadFile(path)
		if err != nil {
			return cfg, path, err
		}
		return cfg, path, nil
	}

	return embeddedDefault(), EmbeddedSource, nil
}

// LoadFile reads, decodes and validates a single config file.
func LoadFile(path string) (FlappyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FlappyConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes YAML on top of the embedded defaults and validates the result.
// name is only used in error messages.
func Parse(data []byte, name string) (FlappyConfig, error) {
	cfg := embeddedDefault()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, fmt.Errorf("config: failed to parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

// Marshal encodes a config as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

func embeddedDefault() FlappyConfig {
	var cfg FlappyConfig
	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}
