package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WriteDefault creates a starter config file if none exists yet and
// returns its path.
func WriteDefault() (string, error) {
	dir := configDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", err
	}
	header := []byte("# Cybersecurity-Tutor configuration.\n# api_key may reference an environment variable with $NAME.\n")
	return path, os.WriteFile(path, append(header, data...), 0o600)
}
