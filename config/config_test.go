package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()
	assert.Equal(t, 500, cfg.Sync.PageSize)
	assert.Equal(t, 7*24*time.Hour, cfg.Sync.Retention)
	assert.Contains(t, cfg.Jobs.ExclusiveTypes, "submit-order")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SYNC_RETENTION", "72h")
	t.Setenv("SYNC_SWEEP_INTERVAL", "120")
	t.Setenv("JOBS_LOCK_TTL", "not-a-duration")
	t.Setenv("JOBS_EXCLUSIVE_TYPES", "submit-order, sync-prices ,")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg := LoadEnv()
	assert.Equal(t, 72*time.Hour, cfg.Sync.Retention)
	assert.Equal(t, 2*time.Minute, cfg.Sync.SweepInterval)
	assert.Equal(t, 5*time.Minute, cfg.Jobs.LockTTL)
	assert.Equal(t, []string{"submit-order", "sync-prices"}, cfg.Jobs.ExclusiveTypes)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}
