package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Storage      StorageConfig      `toml:"storage"`
	Payment      PaymentConfig      `toml:"payment"`
	QRService    QRServiceConfig    `toml:"qr_service"`
	WhatsApp     WhatsAppConfig     `toml:"whatsapp"`
	Confirmation ConfirmationConfig `toml:"confirmation"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
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

// StorageConfig настройки локального хранилища бронирований
type StorageConfig struct {
	File string `toml:"file"`
}

// PaymentConfig реквизиты получателя UPI-платежей
type PaymentConfig struct {
	PayeeVPA        string `toml:"payee_vpa"`
	PayeeName       string `toml:"payee_name"`
	TransactionNote string `toml:"transaction_note"`
}

// QRServiceConfig настройки внешнего сервиса рендеринга QR-кодов
type QRServiceConfig struct {
	BaseURL string `toml:"base_url"`
	Size    string `toml:"size"` // "320x320"
}

// WhatsAppConfig настройки deep-link чата подтверждений
type WhatsAppConfig struct {
	BaseURL string `toml:"base_url"`
	Phone   string `toml:"phone"`
	Timeout int    `toml:"timeout"` // seconds
}

// ConfirmationConfig настройки подтверждения после оплаты
type ConfirmationConfig struct {
	CoachName      string `toml:"coach_name"`
	CaptureDelayMS int    `toml:"capture_delay_ms"`
}

// Load читает конфигурацию из TOML-файла и применяет переопределения
// из окружения для чувствительных реквизитов
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig значения по умолчанию, совпадающие с исходным виджетом
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "oto-booking-service",
		},
		Storage: StorageConfig{
			File: "data/bookings.json",
		},
		QRService: QRServiceConfig{
			BaseURL: "https://api.qrserver.com/v1/create-qr-code/",
			Size:    "320x320",
		},
		WhatsApp: WhatsAppConfig{
			BaseURL: "https://wa.me",
			Timeout: 5,
		},
		Confirmation: ConfirmationConfig{
			CaptureDelayMS: 800,
		},
	}
}

// applyEnvOverrides переопределяет платёжные реквизиты из окружения,
// чтобы не хранить их в config.toml
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("UPI_PAYEE_VPA"); v != "" {
		c.Payment.PayeeVPA = v
	}
	if v := os.Getenv("WHATSAPP_PHONE"); v != "" {
		c.WhatsApp.Phone = v
	}
}

// validate проверяет обязательные поля конфигурации
func (c *Config) validate() error {
	if c.Payment.PayeeVPA == "" {
		return fmt.Errorf("config: payment.payee_vpa is required (or set UPI_PAYEE_VPA)")
	}
	if c.WhatsApp.Phone == "" {
		return fmt.Errorf("config: whatsapp.phone is required (or set WHATSAPP_PHONE)")
	}
	if c.Storage.File == "" {
		return fmt.Errorf("config: storage.file is required")
	}
	return nil
}
