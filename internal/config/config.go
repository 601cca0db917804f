package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается, когда значения конфигурации некорректны
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Auth         AuthConfig         `toml:"auth"`
	Mail         MailConfig         `toml:"mail"`
	Cache        CacheConfig        `toml:"cache"`
	Jobs         JobsConfig         `toml:"jobs"`
	Reservations ReservationsConfig `toml:"reservations"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host                string `toml:"host"`
	Port                int    `toml:"port"`
	User                string `toml:"user"`
	Password            string `toml:"password"`
	DBName              string `toml:"dbname"`
	SSLMode             string `toml:"sslmode"`
	MaxOpenConns        int    `toml:"max_open_conns"`
	MaxIdleConns        int    `toml:"max_idle_conns"`
	ConnMaxLifetime     int    `toml:"conn_max_lifetime"` // секунды
	SerializableRetries int    `toml:"serializable_retries"`
	MigrateOnStart      bool   `toml:"migrate_on_start"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret  string `toml:"jwt_secret"`
	TokenTTL   int    `toml:"token_ttl"` // минуты
	Issuer     string `toml:"issuer"`
	BcryptCost int    `toml:"bcrypt_cost"`
}

type MailConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	FromName string `toml:"from_name"`
	Timeout  int    `toml:"timeout"` // секунды
	BaseURL  string `toml:"base_url"`
}

type CacheConfig struct {
	Enabled     bool   `toml:"enabled"`
	Addr        string `toml:"addr"`
	Password    string `toml:"password"`
	DB          int    `toml:"db"`
	Prefix      string `toml:"prefix"`
	HomeTTL     int    `toml:"home_ttl"` // секунды
	PingTimeout int    `toml:"ping_timeout"`
}

type JobsConfig struct {
	Enabled           bool `toml:"enabled"`
	ExpireIntervalSec int  `toml:"expire_interval_sec"`
}

// ReservationsConfig правила бронирования и часы работы
type ReservationsConfig struct {
	SlotMinutes   int    `toml:"slot_minutes"`
	BufferMinutes int    `toml:"buffer_minutes"`
	Timezone      string `toml:"timezone"`
	OpenAt        string `toml:"open_at"`  // "HH:MM"
	CloseAt       string `toml:"close_at"` // "HH:MM"
	StepMinutes   int    `toml:"step_minutes"`
}

// Location часовой пояс ресторана
func (r ReservationsConfig) Location() (*time.Location, error) {
	if r.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(r.Timezone)
}

// Default конфигурация по умолчанию. Значения из файла ее перекрывают
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:                "localhost",
			Port:                5432,
			User:                "postgres",
			DBName:              "restaurant",
			SSLMode:             "disable",
			MaxOpenConns:        25,
			MaxIdleConns:        5,
			ConnMaxLifetime:     300,
			SerializableRetries: 3,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "restaurant-service"},
		Auth: AuthConfig{
			TokenTTL:   24 * 60,
			Issuer:     "restaurant-service",
			BcryptCost: 10,
		},
		Mail:  MailConfig{Port: 587, Timeout: 10, FromName: "Ресторан"},
		Cache: CacheConfig{Addr: "localhost:6379", Prefix: "restaurant:", HomeTTL: 300, PingTimeout: 2},
		Jobs:  JobsConfig{Enabled: true, ExpireIntervalSec: 300},
		Reservations: ReservationsConfig{
			SlotMinutes:   60,
			BufferMinutes: 60,
			OpenAt:        "10:00",
			CloseAt:       "23:00",
			StepMinutes:   30,
		},
	}
}

// Load читает .env (если есть), затем TOML-файл и переменные окружения с секретами
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
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
	overrides := map[string]*string{
		"DB_HOST":        &c.Database.Host,
		"DB_USER":        &c.Database.User,
		"DB_PASSWORD":    &c.Database.Password,
		"DB_NAME":        &c.Database.DBName,
		"JWT_SECRET":     &c.Auth.JWTSecret,
		"SMTP_PASSWORD":  &c.Mail.Password,
		"REDIS_ADDR":     &c.Cache.Addr,
		"REDIS_PASSWORD": &c.Cache.Password,
		"LOG_LEVEL":      &c.Logs.Level,
	}
	for key, dst := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("HTTP_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}
	if v, ok := os.LookupEnv("DB_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: DB_PORT=%q", ErrInvalidConfig, v)
		}
		c.Database.Port = port
	}
	return nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0:
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	case c.Auth.JWTSecret == "":
		return fmt.Errorf("%w: auth.jwt_secret (JWT_SECRET) is required", ErrInvalidConfig)
	case c.Auth.TokenTTL <= 0:
		return fmt.Errorf("%w: auth.token_ttl must be positive", ErrInvalidConfig)
	case c.Reservations.SlotMinutes <= 0:
		return fmt.Errorf("%w: reservations.slot_minutes must be positive", ErrInvalidConfig)
	case c.Reservations.BufferMinutes < 0:
		return fmt.Errorf("%w: reservations.buffer_minutes must not be negative", ErrInvalidConfig)
	case c.Jobs.Enabled && c.Jobs.ExpireIntervalSec <= 0:
		return fmt.Errorf("%w: jobs.expire_interval_sec must be positive", ErrInvalidConfig)
	case c.Cache.Enabled && c.Cache.Addr == "":
		return fmt.Errorf("%w: cache.addr is required when cache is enabled", ErrInvalidConfig)
	case c.Mail.Enabled && c.Mail.Host == "":
		return fmt.Errorf("%w: mail.host is required when mail is enabled", ErrInvalidConfig)
	}

	if _, err := c.Reservations.Location(); err != nil {
		return fmt.Errorf("%w: reservations.timezone: %v", ErrInvalidConfig, err)
	}
	return nil
}

// SlotDuration длительность брони
func (r ReservationsConfig) SlotDuration() time.Duration {
	return time.Duration(r.SlotMinutes) * time.Minute
}

// BufferDuration минимальный промежуток между бронями одного стола
func (r ReservationsConfig) BufferDuration() time.Duration {
	return time.Duration(r.BufferMinutes) * time.Minute
}
