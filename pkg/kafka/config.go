package kafka

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	confluent "github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// DefaultFlushTimeout bounds how long Close waits for in-flight messages.
const DefaultFlushTimeout = 15 * time.Second

// ProducerConfig holds the settings for the result event producer.
type ProducerConfig struct {
	BootstrapServers string        `env:"KAFKA_BOOTSTRAP_SERVERS" envDefault:"localhost:9092"` // Kafka broker addresses
	Topic            string        `env:"KAFKA_TOPIC"             envDefault:"conformance-results"`
	ClientID         string        `env:"KAFKA_CLIENT_ID"         envDefault:"evm-conformance"`
	FlushTimeout     time.Duration `env:"KAFKA_FLUSH_TIMEOUT"     envDefault:"15s"`
	EnableLogs       bool          `env:"KAFKA_ENABLE_LOGS"       envDefault:"false"` // librdkafka client logs
}

// LoadProducerConfig reads producer settings from environment variables.
func LoadProducerConfig() (ProducerConfig, error) {
	var cfg ProducerConfig
	if err := env.Parse(&cfg); err != nil {
		return ProducerConfig{}, fmt.Errorf("parse kafka producer config: %w", err)
	}
	return cfg, nil
}

// ConfigMap converts the config into librdkafka settings.
func (c ProducerConfig) ConfigMap() *confluent.ConfigMap {
	return &confluent.ConfigMap{
		"bootstrap.servers":       c.BootstrapServers,
		"client.id":               c.ClientID,
		"go.logs.channel.enable":  c.EnableLogs,
		"enable.idempotence":      true,
		"acks":                    "all",
		"socket.keepalive.enable": true,
	}
}
