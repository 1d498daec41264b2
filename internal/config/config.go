package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Nominatim NominatimConfig
	Overpass  OverpassConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// NominatimConfig configures the geocoding client. The upstream is a shared
// public resource: one attempt per request, identified by UserAgent.
type NominatimConfig struct {
	BaseURL        string
	UserAgent      string
	AcceptLanguage string
	RequestTimeout time.Duration
}

// OverpassConfig configures the spatial-query interpreter client. The query
// itself embeds a server-side timeout, so the client timeout sits above it.
type OverpassConfig struct {
	BaseURL        string
	UserAgent      string
	RequestTimeout time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine; environment variables still apply.
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Nominatim: NominatimConfig{
			BaseURL:        viper.GetString("NOMINATIM_BASE_URL"),
			UserAgent:      viper.GetString("CLIENT_USER_AGENT"),
			AcceptLanguage: viper.GetString("NOMINATIM_ACCEPT_LANGUAGE"),
			RequestTimeout: time.Duration(viper.GetInt("NOMINATIM_TIMEOUT")) * time.Second,
		},
		Overpass: OverpassConfig{
			BaseURL:        viper.GetString("OVERPASS_BASE_URL"),
			UserAgent:      viper.GetString("CLIENT_USER_AGENT"),
			RequestTimeout: time.Duration(viper.GetInt("OVERPASS_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Nominatim.BaseURL == "" {
		cfg.Nominatim.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Nominatim.AcceptLanguage == "" {
		cfg.Nominatim.AcceptLanguage = "zh-TW"
	}
	if cfg.Nominatim.RequestTimeout == 0 {
		cfg.Nominatim.RequestTimeout = 10 * time.Second
	}
	if cfg.Overpass.BaseURL == "" {
		cfg.Overpass.BaseURL = "https://overpass-api.de/api/interpreter"
	}
	if cfg.Overpass.RequestTimeout == 0 {
		// Above the 25s timeout embedded in the query text.
		cfg.Overpass.RequestTimeout = 30 * time.Second
	}
	if cfg.Nominatim.UserAgent == "" {
		cfg.Nominatim.UserAgent = "EatGo (free OSM demo)"
	}
	if cfg.Overpass.UserAgent == "" {
		cfg.Overpass.UserAgent = "EatGo (free OSM demo)"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
