package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/partizan-booking/internal/domain"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Переменные окружения, перекрывающие значения из файла
const (
	EnvDBPassword = "DB_PASSWORD"
	EnvAdminToken = "ADMIN_TOKEN"
	EnvRedisURL   = "REDIS_URL"
	EnvHTTPPort   = "HTTP_PORT"
)

type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Booking       BookingConfig       `toml:"booking"`
	BusinessHours BusinessHoursConfig `toml:"business_hours"`
	Admin         AdminConfig         `toml:"admin"`
	RateLimit     RateLimitConfig     `toml:"rate_limit"`
	Migrations    MigrationsConfig    `toml:"migrations"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.DBName,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
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

type BookingConfig struct {
	Timezone         string `toml:"timezone"`
	MaxAdmitAttempts int    `toml:"max_admit_attempts"`
}

// Location часовой пояс площадки
func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// BusinessHoursConfig часы работы [open, close)
type BusinessHoursConfig struct {
	WeekdayOpen  int `toml:"weekday_open"`
	WeekdayClose int `toml:"weekday_close"`
	WeekendOpen  int `toml:"weekend_open"`
	WeekendClose int `toml:"weekend_close"`
}

// ToDomain конвертирует в domain.BusinessHours
func (c BusinessHoursConfig) ToDomain() domain.BusinessHours {
	return domain.BusinessHours{
		WeekdayOpen:  c.WeekdayOpen,
		WeekdayClose: c.WeekdayClose,
		WeekendOpen:  c.WeekendOpen,
		WeekendClose: c.WeekendClose,
	}
}

type AdminConfig struct {
	Token string `toml:"token"`
}

type RateLimitConfig struct {
	Enabled            bool   `toml:"enabled"`
	Rate               string `toml:"rate"`
	TrustForwardHeader bool   `toml:"trust_forward_header"`
	RedisURL           string `toml:"redis_url"`
}

type MigrationsConfig struct {
	AutoApply bool `toml:"auto_apply"`
}

// Default значения, которые перекрываются файлом и окружением
func Default() *Config {
	hours := domain.DefaultBusinessHours()

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "partizan",
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			File:  "logs/app.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "partizan_booking",
		},
		Booking: BookingConfig{
			Timezone:         "Europe/Moscow",
			MaxAdmitAttempts: 3,
		},
		BusinessHours: BusinessHoursConfig{
			WeekdayOpen:  hours.WeekdayOpen,
			WeekdayClose: hours.WeekdayClose,
			WeekendOpen:  hours.WeekendOpen,
			WeekendClose: hours.WeekendClose,
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			Rate:    "20-M",
		},
		Migrations: MigrationsConfig{
			AutoApply: true,
		},
	}
}

// Load читает TOML поверх значений по умолчанию, затем применяет .env и окружение
// Отсутствие .env не ошибка
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
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
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvAdminToken); ok {
		c.Admin.Token = v
	}
	if v, ok := os.LookupEnv(EnvRedisURL); ok {
		c.RateLimit.RedisURL = v
	}
	if v, ok := os.LookupEnv(EnvHTTPPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvHTTPPort, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет значения после всех перекрытий
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Booking.MaxAdmitAttempts < 1 {
		return fmt.Errorf("%w: booking.max_admit_attempts must be >= 1", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone=%q: %v", ErrInvalidConfig, c.Booking.Timezone, err)
	}
	if err := c.BusinessHours.ToDomain().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.RateLimit.Enabled && c.RateLimit.Rate == "" {
		return fmt.Errorf("%w: rate_limit.rate is required when enabled", ErrInvalidConfig)
	}
	return nil
}
