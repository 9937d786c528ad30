package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/fx"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DBConfig struct {
	// DSN selects the storage backend: empty means in-memory stores
	// (non-persistent, single instance), anything else is a postgres DSN.
	DSN string `mapstructure:"dsn"`
}

type AuthConfig struct {
	Secret        string `mapstructure:"secret"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours"`
}

type OrderConfig struct {
	ExpiryMinutes int `mapstructure:"expiry_minutes"`
}

type Env string

const (
	EnvDev  Env = "dev"
	EnvProd Env = "prod"
)

type Config struct {
	Env         Env          `mapstructure:"env"`
	Server      ServerConfig `mapstructure:"server"`
	Database    DBConfig     `mapstructure:"database"`
	Auth        AuthConfig   `mapstructure:"auth"`
	Order       OrderConfig  `mapstructure:"order"`
	MetricsAddr string       `mapstructure:"metrics_addr"`
}

// TokenTTL is the validity window stamped on issued auth tokens.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenTTLHours) * time.Hour
}

// OrderExpiry is how long a created order may stay unpaid.
func (c *Config) OrderExpiry() time.Duration {
	return time.Duration(c.Order.ExpiryMinutes) * time.Minute
}

func New() (*Config, error) {
	v := viper.New()
	// Allow overriding config file via env:
	// - APP_CONFIG_FILE: absolute or relative file path (e.g., /etc/app/prod.yaml)
	// - APP_CONFIG_NAME: config base name without extension (default: "config")
	if file := os.Getenv("APP_CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
	} else {
		cfgName := os.Getenv("APP_CONFIG_NAME")
		if cfgName == "" {
			cfgName = "config"
		}
		v.SetConfigName(cfgName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("env", "dev")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8888)
	v.SetDefault("database.dsn", "")
	v.SetDefault("auth.secret", "dev-secret-change-me")
	v.SetDefault("auth.token_ttl_hours", 24)
	v.SetDefault("order.expiry_minutes", 15)
	v.SetDefault("metrics_addr", ":90")

	if err := v.ReadInConfig(); err != nil {
		_ = err
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &c, nil
}

var Module = fx.Options(
	fx.Provide(New),
)
