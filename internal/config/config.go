package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the saved CLI state written after a successful login.
type Config struct {
	URL       string `yaml:"url"`
	Email     string `yaml:"email"`
	Token     string `yaml:"token"`
	LastLogin string `yaml:"lastLogin"`
}

// IsEmpty reports whether no login has been saved yet.
func (c *Config) IsEmpty() bool {
	return c.URL == "" && c.Email == "" && c.Token == ""
}

// Path returns the config file location under the user's home directory.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "sdm", "config.yaml"), nil
}

// Load reads the saved config. A missing file yields an empty config, not an
// error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &cfg, nil
}

// Save writes the config with owner-only permissions. The token is a
// credential, so the file is never group or world readable.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
