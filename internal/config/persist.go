package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configDirName  = "foldersize"
	configFileName = "config.yaml"
	envPrefix      = "FOLDERSIZE"
)

func DefaultConfig() Config {
	return Config{
		Path:     ".",
		PageSize: 25,
		Theme:    ThemeDark,
		LogLevel: "warn",
	}
}

func ConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

func LoadConfig() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile reads path on top of the defaults. A missing file is not an
// error. FOLDERSIZE_* environment variables override file values.
func LoadConfigFile(path string) (Config, error) {
	defaults := DefaultConfig()
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("path", defaults.Path)
	v.SetDefault("show_hidden", defaults.ShowHidden)
	v.SetDefault("hide_comments", defaults.HideComments)
	v.SetDefault("page_size", defaults.PageSize)
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("exclude_patterns", []string{})
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_file", defaults.LogFile)

	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return defaults, fmt.Errorf("read config %s: %w", path, err)
	}

	var loaded Config
	if err := v.Unmarshal(&loaded); err != nil {
		return defaults, fmt.Errorf("decode config %s: %w", path, err)
	}
	return normalize(loaded, defaults), nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

func normalize(config Config, defaults Config) Config {
	if config.PageSize <= 0 {
		config.PageSize = defaults.PageSize
	}
	switch config.Theme {
	case ThemeDark, ThemeLight:
	default:
		config.Theme = defaults.Theme
	}
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	if config.Path == "" {
		config.Path = defaults.Path
	}
	return config
}

func SaveConfigFile(path string, config Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
