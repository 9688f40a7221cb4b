package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	NATS      NATSConfig      `mapstructure:"nats"`
	Valkey    ValkeyConfig    `mapstructure:"valkey"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Providers ProvidersConfig `mapstructure:"providers"`
}

type ServerConfig struct {
	Port         int `mapstructure:"port"`
	ReadTimeout  int `mapstructure:"read_timeout"`
	WriteTimeout int `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type NATSConfig struct {
	URL string `mapstructure:"url"`
}

type ValkeyConfig struct {
	Addr string `mapstructure:"addr"`
}

type TelemetryConfig struct {
	ServiceName string `mapstructure:"service_name"`
	OTLPAddr    string `mapstructure:"otlp_addr"`
	Enabled     bool   `mapstructure:"enabled"`
}

// ProvidersConfig configures the upstream API clients.
type ProvidersConfig struct {
	OpenWeather OpenWeatherConfig `mapstructure:"openweather"`
	OpenMeteo   OpenMeteoConfig   `mapstructure:"openmeteo"`
	Photon      PhotonConfig      `mapstructure:"photon"`
	OpenTripMap OpenTripMapConfig `mapstructure:"opentripmap"`
	Ollama      OllamaConfig      `mapstructure:"ollama"`
}

type OpenWeatherConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type OpenMeteoConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type PhotonConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type OpenTripMapConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	Lang           string `mapstructure:"lang"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type OllamaConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Load reads configuration from file and environment variables.
func Load(service string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "atlas")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "travelatlas")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("valkey.addr", "localhost:6379")
	v.SetDefault("telemetry.service_name", service)
	v.SetDefault("telemetry.otlp_addr", "tempo:4317")
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("providers.openweather.base_url", "https://api.openweathermap.org")
	v.SetDefault("providers.openweather.api_key", "")
	v.SetDefault("providers.openweather.timeout_seconds", 10)
	v.SetDefault("providers.openmeteo.base_url", "https://api.open-meteo.com")
	v.SetDefault("providers.openmeteo.timeout_seconds", 10)
	v.SetDefault("providers.photon.base_url", "https://photon.komoot.io")
	v.SetDefault("providers.photon.timeout_seconds", 10)
	v.SetDefault("providers.opentripmap.base_url", "https://api.opentripmap.com")
	v.SetDefault("providers.opentripmap.api_key", "")
	v.SetDefault("providers.opentripmap.lang", "en")
	v.SetDefault("providers.opentripmap.timeout_seconds", 10)
	v.SetDefault("providers.ollama.base_url", "http://localhost:11434")
	v.SetDefault("providers.ollama.model", "llama3.1")
	v.SetDefault("providers.ollama.timeout_seconds", 60)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: ATLAS_PROVIDERS_OPENWEATHER_API_KEY → providers.openweather.api_key
	v.SetEnvPrefix("ATLAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	if c.Database.Host == "" {
		errs = append(errs, "database.host is required")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", c.Database.Port))
	}
	if c.Database.User == "" {
		errs = append(errs, "database.user is required")
	}
	if c.Database.DBName == "" {
		errs = append(errs, "database.dbname is required")
	}
	if c.NATS.URL == "" {
		errs = append(errs, "nats.url is required")
	}
	if c.Valkey.Addr == "" {
		errs = append(errs, "valkey.addr is required")
	}
	if c.Providers.OpenWeather.BaseURL == "" {
		errs = append(errs, "providers.openweather.base_url is required")
	}
	if c.Providers.Photon.BaseURL == "" {
		errs = append(errs, "providers.photon.base_url is required")
	}
	if c.Providers.OpenTripMap.BaseURL == "" {
		errs = append(errs, "providers.opentripmap.base_url is required")
	}
	if c.Providers.Ollama.BaseURL == "" {
		errs = append(errs, "providers.ollama.base_url is required")
	}
	if c.Providers.Ollama.Model == "" {
		errs = append(errs, "providers.ollama.model is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
