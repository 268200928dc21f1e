package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProducerConfig_Defaults(t *testing.T) {
	cfg, err := LoadProducerConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost:9092", cfg.BootstrapServers)
	assert.Equal(t, "conformance-results", cfg.Topic)
	assert.Equal(t, "evm-conformance", cfg.ClientID)
	assert.Equal(t, DefaultFlushTimeout, cfg.FlushTimeout)
	assert.False(t, cfg.EnableLogs)
}

func TestLoadProducerConfig_EnvOverrides(t *testing.T) {
	t.Setenv("KAFKA_BOOTSTRAP_SERVERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_TOPIC", "results-staging")
	t.Setenv("KAFKA_FLUSH_TIMEOUT", "30s")
	t.Setenv("KAFKA_ENABLE_LOGS", "true")

	cfg, err := LoadProducerConfig()
	require.NoError(t, err)
	assert.Equal(t, "broker1:9092,broker2:9092", cfg.BootstrapServers)
	assert.Equal(t, "results-staging", cfg.Topic)
	assert.Equal(t, 30*time.Second, cfg.FlushTimeout)
	assert.True(t, cfg.EnableLogs)
}

func TestProducerConfig_ConfigMap(t *testing.T) {
	cfg := ProducerConfig{
		BootstrapServers: "broker:9092",
		ClientID:         "suite-1",
		EnableLogs:       true,
	}

	cm := cfg.ConfigMap()
	require.NotNil(t, cm)

	assert.Equal(t, "broker:9092", (*cm)["bootstrap.servers"])
	assert.Equal(t, "suite-1", (*cm)["client.id"])
	assert.Equal(t, true, (*cm)["go.logs.channel.enable"])
	assert.Equal(t, true, (*cm)["enable.idempotence"])
	assert.Equal(t, "all", (*cm)["acks"])
	assert.Equal(t, true, (*cm)["socket.keepalive.enable"])
}

func TestDefaultFlushTimeout(t *testing.T) {
	assert.Equal(t, 15*time.Second, DefaultFlushTimeout)
}
