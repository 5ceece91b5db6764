package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	StayService  StayServiceConfig  `toml:"stayservice"`
	Pricing      PricingConfig      `toml:"pricing"`
	Availability AvailabilityConfig `toml:"availability"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// StayServiceConfig настройки клиента StayService
type StayServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// PricingConfig ставки сборов в процентах. Наблюдаемые значения расходятся
// между версиями клиента, поэтому ставки — конфигурация, не константы
type PricingConfig struct {
	CleaningFeePercent float64 `toml:"cleaning_fee_percent"`
	ServiceFeePercent  float64 `toml:"service_fee_percent"`
}

// AvailabilityConfig настройки поиска свободных окон
type AvailabilityConfig struct {
	ScanHorizonDays int `toml:"scan_horizon_days"`
}

// Load читает конфигурацию из TOML файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc-stay-booking-service"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.StayService.Timeout == 0 {
		c.StayService.Timeout = 10
	}
	if c.Pricing.CleaningFeePercent == 0 {
		c.Pricing.CleaningFeePercent = domain.DefaultCleaningFeePercent
	}
	if c.Pricing.ServiceFeePercent == 0 {
		c.Pricing.ServiceFeePercent = domain.DefaultServiceFeePercent
	}
	if c.Availability.ScanHorizonDays == 0 {
		c.Availability.ScanHorizonDays = domain.DefaultScanHorizonDays
	}
}

func (c *Config) validate() error {
	if c.StayService.URL == "" {
		return fmt.Errorf("config: stayservice.url is required")
	}
	if c.Pricing.CleaningFeePercent < 0 || c.Pricing.ServiceFeePercent < 0 {
		return fmt.Errorf("config: fee percents must be non-negative")
	}
	if c.Availability.ScanHorizonDays < 1 || c.Availability.ScanHorizonDays > domain.MaxScanHorizonDays {
		return fmt.Errorf("config: availability.scan_horizon_days must be in [1, %d]", domain.MaxScanHorizonDays)
	}
	return nil
}
