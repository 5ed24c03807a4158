package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const DefaultPort = 8080

type Config struct {
	Env       string          `mapstructure:"env"`
	Server    ServerConfig    `mapstructure:"server"`
	Static    StaticConfig    `mapstructure:"static"`
	Contact   ContactConfig   `mapstructure:"contact"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Port         int      `mapstructure:"port"`
	ReadTimeout  int      `mapstructure:"read_timeout_seconds"`
	WriteTimeout int      `mapstructure:"write_timeout_seconds"`
	IdleTimeout  int      `mapstructure:"idle_timeout_seconds"`
	CORSOrigins  []string `mapstructure:"cors_origins"`
}

// StaticConfig controls the public asset root. An empty Dir means the
// assets embedded in the binary are served.
type StaticConfig struct {
	Dir        string   `mapstructure:"dir"`
	MaxAge     int      `mapstructure:"max_age_seconds"`
	CSPSources []string `mapstructure:"csp_sources"`
}

type ContactConfig struct {
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
}

type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(c.ReadTimeout) * time.Second
}

func (c ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(c.WriteTimeout) * time.Second
}

func (c ServerConfig) IdleTimeoutDuration() time.Duration {
	return time.Duration(c.IdleTimeout) * time.Second
}

func (c StaticConfig) MaxAgeDuration() time.Duration {
	return time.Duration(c.MaxAge) * time.Second
}

// Load reads configuration from the environment. PORT is parsed when present
// and falls back to 8080 otherwise.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("env", "local")
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.read_timeout_seconds", 15)
	v.SetDefault("server.write_timeout_seconds", 15)
	v.SetDefault("server.idle_timeout_seconds", 60)
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("static.dir", "")
	v.SetDefault("static.max_age_seconds", 0)
	v.SetDefault("static.csp_sources", []string{})
	v.SetDefault("contact.max_body_bytes", 1<<20)
	v.SetDefault("telemetry.otlp_endpoint", "")

	// SERVER_READ_TIMEOUT_SECONDS, STATIC_DIR, ...
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.cors_origins", "CORS_ORIGINS")
	v.BindEnv("telemetry.otlp_endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", config.Server.Port)
	}
	if config.Contact.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("invalid contact max body bytes %d", config.Contact.MaxBodyBytes)
	}

	return &config, nil
}
