package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Driver          string `toml:"driver"` // "postgres" (lib/pq) или "pgx"
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения в формате key=value (понимают и lib/pq, и pgx)
// Значения берутся в одинарные кавычки, чтобы пароль мог содержать пробелы и кавычки
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		quoteDSN(d.Host), d.Port, quoteDSN(d.User), quoteDSN(d.Password), quoteDSN(d.DBName), quoteDSN(d.SSLMode))
}

func quoteDSN(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig часы работы по умолчанию для точек входа бронирования
// Используются, если у бизнеса нет собственной настройки в БД
type ScheduleConfig struct {
	Timezone string        `toml:"timezone"`
	Widget   ProfileConfig `toml:"widget"`    // публичный виджет бронирования
	QuickAdd ProfileConfig `toml:"quick_add"` // быстрое добавление из панели
}

// ProfileConfig часы работы и шаг сетки слотов
type ProfileConfig struct {
	OpeningHour int `toml:"opening_hour"`
	ClosingHour int `toml:"closing_hour"`
	StepMinutes int `toml:"step_minutes"`
}

// Location возвращает часовой пояс бизнеса
func (s ScheduleConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "barber_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "barber_booking",
		},
		Schedule: ScheduleConfig{
			Timezone: "Europe/Istanbul",
			Widget:   ProfileConfig{OpeningHour: 9, ClosingHour: 21, StepMinutes: 30},
			QuickAdd: ProfileConfig{OpeningHour: 10, ClosingHour: 20, StepMinutes: 15},
		},
	}
}

// Load загружает конфигурацию из TOML файла поверх значений по умолчанию
// Переменные окружения BOOKING_DB_HOST и BOOKING_DB_PASSWORD имеют приоритет над файлом
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("BOOKING_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("BOOKING_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("BOOKING_HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be a valid TCP port", ErrInvalidConfig)
	}

	switch c.Database.Driver {
	case "postgres", "pgx":
	default:
		return fmt.Errorf("%w: database.driver must be \"postgres\" or \"pgx\", got %q", ErrInvalidConfig, c.Database.Driver)
	}

	if _, err := c.Schedule.Location(); err != nil {
		return fmt.Errorf("%w: schedule.timezone: %v", ErrInvalidConfig, err)
	}

	if err := c.Schedule.Widget.validate("schedule.widget"); err != nil {
		return err
	}
	if err := c.Schedule.QuickAdd.validate("schedule.quick_add"); err != nil {
		return err
	}

	return nil
}

func (p ProfileConfig) validate(section string) error {
	if p.OpeningHour < 0 || p.ClosingHour > 24 || p.OpeningHour >= p.ClosingHour {
		return fmt.Errorf("%w: %s: opening_hour must be before closing_hour within 0..24", ErrInvalidConfig, section)
	}
	if p.StepMinutes <= 0 || 60%p.StepMinutes != 0 {
		return fmt.Errorf("%w: %s: step_minutes must divide 60", ErrInvalidConfig, section)
	}
	return nil
}
