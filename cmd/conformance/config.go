package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

// Config holds all configuration for the conformance application
type Config struct {
	// Application settings
	Verbose bool

	// Target node settings
	RPCURL         string
	PrivateKey     string
	Checks         []string
	Parallelism    int64
	ReceiptTimeout time.Duration

	// Metrics settings
	MetricsHost string
	MetricsPort int
	Environment string

	// Result sinks
	ClickHouseSink bool
	KafkaSink      bool
}

// MetricsAddr returns the formatted metrics address
func (c *Config) MetricsAddr() string {
	return fmt.Sprintf("%s:%d", c.MetricsHost, c.MetricsPort)
}

// buildConfig builds a Config from CLI context flags
func buildConfig(c *cli.Context) *Config {
	return &Config{
		Verbose:        c.Bool("verbose"),
		RPCURL:         c.String("rpc-url"),
		PrivateKey:     c.String("private-key"),
		Checks:         c.StringSlice("check"),
		Parallelism:    c.Int64("parallelism"),
		ReceiptTimeout: c.Duration("receipt-timeout"),
		MetricsHost:    c.String("metrics-host"),
		MetricsPort:    c.Int("metrics-port"),
		Environment:    c.String("environment"),
		ClickHouseSink: c.Bool("clickhouse-sink"),
		KafkaSink:      c.Bool("kafka-sink"),
	}
}
