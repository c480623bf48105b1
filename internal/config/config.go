package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса (config.toml + переопределения из окружения)
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Tracing  TracingConfig  `toml:"tracing"`
	Booking  BookingConfig  `toml:"booking"`
	CORS     CORSConfig     `toml:"cors"`
}

// ServerConfig таймауты указываются в секундах
type ServerConfig struct {
	HTTPPort        int   `toml:"http_port"`
	ReadTimeout     int   `toml:"read_timeout"`
	WriteTimeout    int   `toml:"write_timeout"`
	IdleTimeout     int   `toml:"idle_timeout"`
	ShutdownTimeout int   `toml:"shutdown_timeout"`
	BodyLimitBytes  int64 `toml:"body_limit_bytes"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	URL             string `toml:"url"` // если задан, используется вместо отдельных полей
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type TracingConfig struct {
	Enabled     bool    `toml:"enabled"`
	Endpoint    string  `toml:"endpoint"`
	SampleRatio float64 `toml:"sample_ratio"`
}

type BookingConfig struct {
	CountryCode       string `toml:"country_code"`
	AvailabilityLimit int    `toml:"availability_limit"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
	AllowedMethods []string `toml:"allowed_methods"`
	AllowedHeaders []string `toml:"allowed_headers"`
	MaxAge         int      `toml:"max_age"`
}

// envOverrides переменные окружения, которые перекрывают значения из файла
type envOverrides struct {
	Port           *int    `envconfig:"PORT"`
	DatabaseURL    *string `envconfig:"DATABASE_URL"`
	LogLevel       *string `envconfig:"LOG_LEVEL"`
	LogFile        *string `envconfig:"LOG_FILE"`
	MetricsEnabled *bool   `envconfig:"METRICS_ENABLED"`
	OTLPEndpoint   *string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			BodyLimitBytes:  1 << 20,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "callcenter",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "callcenter",
		},
		Tracing: TracingConfig{
			SampleRatio: 1,
		},
		Booking: BookingConfig{
			CountryCode:       domain.DefaultCountryCode,
			AvailabilityLimit: domain.DefaultAvailabilityLimit,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию,
// применяет переменные окружения и валидирует результат.
// Отсутствующий файл не является ошибкой.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config: decode %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("config: read environment: %w", err)
	}

	if env.Port != nil {
		c.Server.HTTPPort = *env.Port
	}
	if env.DatabaseURL != nil {
		c.Database.URL = *env.DatabaseURL
	}
	if env.LogLevel != nil {
		c.Logs.Level = *env.LogLevel
	}
	if env.LogFile != nil {
		c.Logs.File = *env.LogFile
	}
	if env.MetricsEnabled != nil {
		c.Metrics.Enabled = *env.MetricsEnabled
	}
	if env.OTLPEndpoint != nil {
		c.Tracing.Endpoint = *env.OTLPEndpoint
		c.Tracing.Enabled = *env.OTLPEndpoint != ""
	}

	return nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Server.BodyLimitBytes <= 0 {
		return fmt.Errorf("%w: server.body_limit_bytes must be positive", ErrInvalidConfig)
	}
	if c.Database.URL == "" && (c.Database.Host == "" || c.Database.DBName == "") {
		return fmt.Errorf("%w: database.url or database.host/dbname required", ErrInvalidConfig)
	}
	if c.Booking.AvailabilityLimit <= 0 || c.Booking.AvailabilityLimit > domain.MaxAvailabilityLimit {
		return fmt.Errorf("%w: booking.availability_limit must be between 1 and %d", ErrInvalidConfig, domain.MaxAvailabilityLimit)
	}
	if c.Booking.CountryCode == "" || strings.Trim(c.Booking.CountryCode, "0123456789") != "" {
		return fmt.Errorf("%w: booking.country_code must be digits", ErrInvalidConfig)
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("%w: tracing.sample_ratio must be in [0,1]", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}
	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.DBName, d.SSLMode)
	if d.Password != "" {
		dsn += fmt.Sprintf(" password=%s", d.Password)
	}
	return dsn
}
