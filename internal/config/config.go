package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/psacc/buflist/internal/source"
)

// Color modes for label output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// EnvPrefix prefixes environment overrides (BUFLIST_ORDERBY, ...).
const EnvPrefix = "BUFLIST"

// Config is the user configuration.
type Config struct {
	OrderBy    string `mapstructure:"orderby" yaml:"orderby"`
	Server     string `mapstructure:"server" yaml:"server"`
	InlineKind bool   `mapstructure:"inline_kind" yaml:"inline_kind"`
	Color      string `mapstructure:"color" yaml:"color"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		OrderBy:    string(source.OrderAsc),
		InlineKind: true,
		Color:      ColorAuto,
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/buflist/config.yaml.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "buflist", "config.yaml"), nil
}

// Load reads configuration from path. If path is empty, DefaultConfigPath is
// used. A missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("orderby", cfg.OrderBy)
	v.SetDefault("server", cfg.Server)
	v.SetDefault("inline_kind", cfg.InlineKind)
	v.SetDefault("color", cfg.Color)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.Server = os.ExpandEnv(cfg.Server)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if _, err := source.ParseOrder(c.OrderBy); err != nil {
		return fmt.Errorf("orderby: %w", err)
	}
	switch strings.ToLower(c.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never; got %q", c.Color)
	}
	return nil
}

// Order returns the validated order.
func (c Config) Order() source.Order {
	order, err := source.ParseOrder(c.OrderBy)
	if err != nil {
		return source.OrderAsc
	}
	return order
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
