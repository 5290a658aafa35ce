package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Booking     BookingConfig     `toml:"booking"`
	AuthService AuthServiceConfig `toml:"auth_service"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig параметры расписания бронирований
type BookingConfig struct {
	OpeningTime            string `toml:"opening_time"`
	ClosingTime            string `toml:"closing_time"`
	BufferMinutes          int    `toml:"buffer_minutes"`
	SlotGranularityMinutes int    `toml:"slot_granularity_minutes"`
}

// ToSchedule конвертирует в доменную конфигурацию расписания, подставляя дефолты
func (c *BookingConfig) ToSchedule() (domain.ScheduleConfig, error) {
	schedule := domain.DefaultScheduleConfig()

	if c.OpeningTime != "" {
		schedule.OpeningTime = types.TimeString(c.OpeningTime)
	}
	if c.ClosingTime != "" {
		schedule.ClosingTime = types.TimeString(c.ClosingTime)
	}
	if c.BufferMinutes > 0 {
		schedule.BufferMinutes = c.BufferMinutes
	}
	if c.SlotGranularityMinutes > 0 {
		schedule.SlotGranularityMinutes = c.SlotGranularityMinutes
	}

	if err := schedule.Validate(); err != nil {
		return domain.ScheduleConfig{}, err
	}

	return schedule, nil
}

// AuthServiceConfig настройки клиента AuthService
type AuthServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "jetski-rental"
	}

	return &cfg, nil
}
