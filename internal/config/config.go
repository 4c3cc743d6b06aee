// Package config loads sdpview settings from defaults, YAML files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/jwulff/sdpview/internal/logging"
)

// EnvPrefix prefixes environment overrides, e.g. SDPVIEW_LOG_LEVEL.
const EnvPrefix = "SDPVIEW"

// Config represents the full sdpview configuration
type Config struct {
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	DB     DBConfig     `yaml:"db" mapstructure:"db"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	TUI    TUIConfig    `yaml:"tui" mapstructure:"tui"`
}

// LogConfig configures zerolog
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file" mapstructure:"file"`
}

// DBConfig points at the capture store
type DBConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// OutputConfig configures non-interactive commands
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

// TUIConfig configures the interactive view
type TUIConfig struct {
	DefaultTab string `yaml:"default_tab" mapstructure:"default_tab"`
}

// Default returns the default configuration
func Default() *Config {
	lc := logging.DefaultConfig()
	return &Config{
		Log: LogConfig{
			Level:  lc.Level,
			Format: lc.Format,
			File:   lc.File,
		},
		DB: DBConfig{
			Path: filepath.Join(Dir(), "captures.db"),
		},
		Output: OutputConfig{
			Format: "text",
		},
		TUI: TUIConfig{
			DefaultTab: "records",
		},
	}
}

// Load merges defaults, the global config file, the explicit file (if any)
// and SDPVIEW_* environment variables, in that order. A missing global file
// is not an error; a missing explicit file is.
func Load(explicit string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v, Default())

	if err := mergeFile(v, GlobalPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load global config: %w", err)
	}
	if explicit != "" {
		if err := mergeFile(v, explicit); err != nil {
			return nil, fmt.Errorf("load config %s: %w", explicit, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func mergeFile(v *viper.Viper, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return v.MergeConfig(f)
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("db.path", cfg.DB.Path)
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("tui.default_tab", cfg.TUI.DefaultTab)
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteDefault writes the default configuration to path, creating parent
// directories.
func WriteDefault(path string) error {
	data, err := Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, append([]byte("# sdpview configuration\n"), data...), 0o644)
}

// Dir returns the sdpview directory under the user's home.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".sdpview")
}

// GlobalPath returns the path to the global config file
func GlobalPath() string {
	return filepath.Join(Dir(), "config.yaml")
}
