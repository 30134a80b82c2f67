package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	ParkingAPI ParkingAPIConfig `toml:"parking_api"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ParkingAPIConfig настройки клиента backend API платформы
type ParkingAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
	Token   string `toml:"token"`
}

// EnvParkingAPIURL переменная окружения, переопределяющая базовый URL backend API
const EnvParkingAPIURL = "PARKING_API_URL"

// Load загружает конфигурацию из TOML файла
// Базовый URL backend API может быть переопределён переменной окружения PARKING_API_URL
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// Переопределение из окружения (приоритет выше файла)
	if url := os.Getenv(EnvParkingAPIURL); url != "" {
		cfg.ParkingAPI.URL = url
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate проверяет обязательные поля конфигурации
func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}

	if c.ParkingAPI.URL == "" {
		return fmt.Errorf("config: parking_api.url is required")
	}

	if c.ParkingAPI.Timeout <= 0 {
		return fmt.Errorf("config: parking_api.timeout must be positive")
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics.path is required when metrics are enabled")
	}

	return nil
}
