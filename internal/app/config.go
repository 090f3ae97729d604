package app

import (
	"time"

	"github.com/vladislavdragonenkov/lunchly/internal/messaging/kafka"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Config описывает настройки запуска приложения.
type Config struct {
	HTTPAddr    string
	GRPCAddr    string
	MetricsAddr string

	StorageDriver string
	PostgresDSN   string

	// KafkaBrokers пуст, если публикация событий выключена.
	KafkaBrokers []string
	KafkaTopic   string

	LogLevel string
	// Timezone задаёт зону для дат резервов, пришедших без смещения.
	Timezone        string
	ShutdownTimeout time.Duration
}

// DefaultConfig возвращает конфигурацию для локального запуска без внешних зависимостей.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:        ":8080",
		GRPCAddr:        ":50051",
		MetricsAddr:     ":9090",
		StorageDriver:   StorageDriverMemory,
		KafkaTopic:      kafka.DefaultTopic,
		LogLevel:        "info",
		Timezone:        "UTC",
		ShutdownTimeout: 5 * time.Second,
	}
}
