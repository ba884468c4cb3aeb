package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	APIKey        string `yaml:"api_key" mapstructure:"api_key"`
	Model         string `yaml:"model" mapstructure:"model"`
	MaxUploadMiB  int    `yaml:"max_upload_mib" mapstructure:"max_upload_mib"`
	SeedMaterials bool   `yaml:"seed_materials" mapstructure:"seed_materials"`
	LogFile       string `yaml:"log_file" mapstructure:"log_file"`
	Debug         bool   `yaml:"debug" mapstructure:"debug"`
}

func DefaultConfig() *Config {
	return &Config{
		APIKey:        "$GEMINI_API_KEY",
		Model:         "gemini-2.5-flash",
		MaxUploadMiB:  10,
		SeedMaterials: true,
	}
}

var envVarRe = regexp.MustCompile(`\$([A-Z_][A-Z0-9_]*)`)

// expandEnv resolves $VAR references so API keys can live in the
// environment instead of the config file.
func expandEnv(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimPrefix(match, "$")
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tutor")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tutor")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(configDir())

	viper.SetEnvPrefix("TUTOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file: defaults plus environment.
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	cfg.APIKey = expandEnv(cfg.APIKey)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and fills unusable values with
// defaults where that is safe.
func (c *Config) Validate() error {
	if c.Model == "" {
		c.Model = "gemini-2.5-flash"
	}
	if c.MaxUploadMiB < 1 {
		c.MaxUploadMiB = 10
	}
	if strings.TrimSpace(c.APIKey) == "" || strings.HasPrefix(c.APIKey, "$") {
		return fmt.Errorf("config: api_key is required (set TUTOR_API_KEY or GEMINI_API_KEY)")
	}
	return nil
}

// MaxUploadBytes converts the configured cap to bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMiB) * 1024 * 1024
}
