package app

import (
	"testing"
	"time"

	"github.com/vladislavdragonenkov/lunchly/internal/messaging/kafka"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected HTTPAddr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.GRPCAddr != ":50051" {
		t.Errorf("expected GRPCAddr :50051, got %s", cfg.GRPCAddr)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("expected MetricsAddr :9090, got %s", cfg.MetricsAddr)
	}
	if cfg.StorageDriver != StorageDriverMemory {
		t.Errorf("expected StorageDriver %s, got %s", StorageDriverMemory, cfg.StorageDriver)
	}
	if len(cfg.KafkaBrokers) != 0 {
		t.Errorf("expected kafka to be disabled by default, got %v", cfg.KafkaBrokers)
	}
	if cfg.KafkaTopic != kafka.DefaultTopic {
		t.Errorf("expected KafkaTopic %s, got %s", kafka.DefaultTopic, cfg.KafkaTopic)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("expected Timezone UTC, got %s", cfg.Timezone)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("expected ShutdownTimeout 5s, got %s", cfg.ShutdownTimeout)
	}
}
