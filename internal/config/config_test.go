package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "REDIS_ADDR", "KAFKA_BROKERS", "SERVICE_NAME", "NOTIFIER_GROUP", "NOTIFIER_WORKERS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.RedisAddr, "redis is opt-in")
	assert.Empty(t, cfg.KafkaBrokers, "kafka is opt-in")
	assert.Equal(t, "grubdash-api", cfg.ServiceName)
	assert.Equal(t, "grubdash-notifier", cfg.NotifierGroup)
	assert.Equal(t, 4, cfg.NotifierWorkers)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092 ,")
	t.Setenv("NOTIFIER_WORKERS", "8")

	cfg := Load()
	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 8, cfg.NotifierWorkers)
}

func TestLoadBadWorkerCountFallsBack(t *testing.T) {
	t.Setenv("NOTIFIER_WORKERS", "zero")
	assert.Equal(t, 4, Load().NotifierWorkers)
}
