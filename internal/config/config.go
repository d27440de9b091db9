package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default runtime values
const (
	DefaultOperationDelay = 5 * time.Second
	DefaultFailureRate    = 0.0
	DefaultFrameInterval  = 16 * time.Millisecond
	DefaultStyleFile      = "loadbutton-style.yaml"
	EnvPrefix             = "LOADBUTTON"
	EnvConfigPath         = "LOADBUTTON_CONFIG"
	configDirName         = "loadbutton"
	configFileName        = "config"
	configFileType        = "yaml"
	maxOperationDelay     = 10 * time.Minute
	minFrameInterval      = time.Millisecond
)

// Config holds runtime configuration shared by the hosts.
type Config struct {
	Operation OperationConfig
	UI        UIConfig
}

// OperationConfig tunes the simulated external operation the hosts start.
type OperationConfig struct {
	Delay       time.Duration
	FailureRate float64 `mapstructure:"failure_rate"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	FrameInterval time.Duration `mapstructure:"frame_interval"`
	StylePath     string        `mapstructure:"style_path"`
	Language      string
}

// Load reads configuration from file and env. Env var overrides use prefix LOADBUTTON_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("operation.delay", DefaultOperationDelay)
	v.SetDefault("operation.failure_rate", DefaultFailureRate)
	v.SetDefault("ui.frame_interval", DefaultFrameInterval)
	v.SetDefault("ui.style_path", DefaultStyleFile)
	v.SetDefault("ui.language", DefaultLanguage)

	v.SetConfigType(configFileType)

	cfgPath := os.Getenv(EnvConfigPath)
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configDirName))
		}
		v.SetConfigName(configFileName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c.sanitized(), nil
}

// Defaults returns the configuration used when nothing is configured.
func Defaults() Config {
	c := Config{UI: UIConfig{StylePath: DefaultStyleFile}}
	return c.sanitized()
}

// sanitized replaces out of range values with defaults
func (c Config) sanitized() Config {
	if c.Operation.Delay <= 0 || c.Operation.Delay > maxOperationDelay {
		c.Operation.Delay = DefaultOperationDelay
	}
	if c.Operation.FailureRate < 0 {
		c.Operation.FailureRate = 0
	}
	if c.Operation.FailureRate > 1 {
		c.Operation.FailureRate = 1
	}
	if c.UI.FrameInterval < minFrameInterval {
		c.UI.FrameInterval = DefaultFrameInterval
	}
	if c.UI.Language == "" {
		c.UI.Language = DefaultLanguage
	}
	return c
}
