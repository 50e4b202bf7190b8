package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds sample-program configuration.
type Config struct {
	Store StoreConfig `mapstructure:"store"`
	UI    UIConfig    `mapstructure:"ui"`
}

// StoreConfig holds recollections settings.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AccentColor    string `mapstructure:"accent_color"`
	RememberLayout bool   `mapstructure:"remember_layout"`
}

// Load reads configuration from file and env. Env var overrides use prefix TEAKIT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("store.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "teakit", "recollections.db"))
	v.SetDefault("ui.accent_color", "#89b4fa")
	v.SetDefault("ui.remember_layout", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TEAKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "teakit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TEAKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("TEAKIT_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "teakit", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("store.path", cfg.Store.Path)
	v.Set("ui.accent_color", cfg.UI.AccentColor)
	v.Set("ui.remember_layout", cfg.UI.RememberLayout)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
