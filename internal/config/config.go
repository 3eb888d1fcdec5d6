// Package config loads server configuration from an optional YAML file and
// CONSORCIO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	// Mode is the gin mode: debug, release or test.
	Mode string `mapstructure:"mode"`
}

type StorageConfig struct {
	// Driver selects the backend: "json" or "sqlite".
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

type UploadsConfig struct {
	Dir      string `mapstructure:"dir"`
	MaxBytes int64  `mapstructure:"max_bytes"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
	// Required makes every mutating route demand a valid bearer token.
	Required bool `mapstructure:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Uploads UploadsConfig `mapstructure:"uploads"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Log     LogConfig     `mapstructure:"log"`
}

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("storage.driver", DriverJSON)
	v.SetDefault("storage.path", "./data/database.json")
	v.SetDefault("uploads.dir", "./data/uploads")
	v.SetDefault("uploads.max_bytes", 10*1024*1024)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("auth.required", false)
	v.SetDefault("log.level", "info")
}

// Load reads configuration from path (e.g. "config.yaml").
// If path is empty, config.yaml in the working directory is used when present;
// a missing default file is not an error.
// Environment variables override file values, e.g. CONSORCIO_SERVER_PORT=9000.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("CONSORCIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverJSON, DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q (want %q or %q)", c.Storage.Driver, DriverJSON, DriverSQLite)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Uploads.MaxBytes <= 0 {
		return fmt.Errorf("uploads.max_bytes must be positive")
	}
	if c.Auth.Required && c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.required needs auth.jwt_secret")
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
