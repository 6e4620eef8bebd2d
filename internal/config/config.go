package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server ServerConfig
	Player PlayerConfig
	Log    LogConfig
}

// ServerConfig holds game server connection settings.
type ServerConfig struct {
	URL         string
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// PlayerConfig holds local player defaults.
type PlayerConfig struct {
	Name string
}

// LogConfig holds log output settings. The TUI owns the terminal, so
// logs go to a file; an empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix WORDGRID_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("server.url", "ws://localhost:5000/ws")
	v.SetDefault("server.dial_timeout", "10s")
	v.SetDefault("player.name", "Player")
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("WORDGRID_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "wordgrid"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WORDGRID")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Server.DialTimeout <= 0 {
		c.Server.DialTimeout = 10 * time.Second
	}
	return c, nil
}
