package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting for the portal. Values come from an
// optional YAML file plus FLEETFLOW_* environment variables, env winning.
type Config struct {
	HTTPPort    string        `mapstructure:"http_port"`
	DatabaseURL string        `mapstructure:"database_url"`
	JWTSecret   string        `mapstructure:"jwt_secret"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`

	// RequestTimeout bounds each request's store work so a slow database
	// cannot hang a handler indefinitely.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// NotifyTimeout bounds the best-effort submission email.
	NotifyTimeout time.Duration `mapstructure:"notify_timeout"`

	SMTPAddr string   `mapstructure:"smtp_addr"`
	SMTPFrom string   `mapstructure:"smtp_from"`
	SMTPTo   []string `mapstructure:"smtp_to"`

	CORSOrigins []string `mapstructure:"cors_origins"`
}

// Load reads configuration from cfgFile (optional) and the environment.
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("http_port", "8080")
	v.SetDefault("database_url", "")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("token_ttl", 24*time.Hour)
	v.SetDefault("request_timeout", 10*time.Second)
	v.SetDefault("notify_timeout", 5*time.Second)
	v.SetDefault("smtp_addr", "")
	v.SetDefault("smtp_from", "")
	v.SetDefault("smtp_to", []string{})
	v.SetDefault("cors_origins", []string{"*"})

	v.SetEnvPrefix("FLEETFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("config: jwt_secret is required")
	}

	return cfg, nil
}
