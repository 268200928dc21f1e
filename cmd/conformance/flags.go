package main

import (
	"time"

	"github.com/urfave/cli/v2"
)

// devnetFundedKey is the pre-funded account of the reference devnet genesis.
// Runs against any other deployment must override it.
const devnetFundedKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

// runFlags returns all CLI flags for the run command. Sink connection
// details (ClickHouse, Kafka) come from environment variables; the flags
// only toggle the sinks on.
func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Enable verbose logging",
			EnvVars: []string{"VERBOSE"},
			Value:   false,
		},
		&cli.StringFlag{
			Name:     "rpc-url",
			Aliases:  []string{"r"},
			Usage:    "The JSON-RPC URL of the node under test",
			EnvVars:  []string{"RPC_URL"},
			Required: true,
		},
		&cli.StringFlag{
			Name:    "private-key",
			Aliases: []string{"k"},
			Usage:   "Hex private key of a funded account used to fund per-check accounts",
			EnvVars: []string{"PRIVATE_KEY"},
			Value:   devnetFundedKey,
		},
		&cli.StringSliceFlag{
			Name:    "check",
			Aliases: []string{"c"},
			Usage:   "Run only the named checks (repeatable); default is the full catalog",
			EnvVars: []string{"CHECKS"},
		},
		&cli.Int64Flag{
			Name:    "parallelism",
			Aliases: []string{"p"},
			Usage:   "Maximum number of checks running concurrently",
			EnvVars: []string{"PARALLELISM"},
			Value:   4,
		},
		&cli.DurationFlag{
			Name:    "receipt-timeout",
			Usage:   "How long to wait for a submitted transaction to reach a receipt",
			EnvVars: []string{"RECEIPT_TIMEOUT"},
			Value:   30 * time.Second,
		},
		&cli.StringFlag{
			Name:    "metrics-host",
			Usage:   "Host for Prometheus metrics server (empty for all interfaces)",
			EnvVars: []string{"METRICS_HOST"},
			Value:   "",
		},
		&cli.IntFlag{
			Name:    "metrics-port",
			Aliases: []string{"m"},
			Usage:   "Port for Prometheus metrics server",
			EnvVars: []string{"METRICS_PORT"},
			Value:   9090,
		},
		&cli.StringFlag{
			Name:    "environment",
			Aliases: []string{"E"},
			Usage:   "Deployment environment for metrics labels (e.g. 'ci', 'staging')",
			EnvVars: []string{"ENVIRONMENT"},
			Value:   "",
		},
		&cli.BoolFlag{
			Name:    "clickhouse-sink",
			Usage:   "Persist run results to ClickHouse (connection via CLICKHOUSE_* env)",
			EnvVars: []string{"CLICKHOUSE_SINK"},
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "kafka-sink",
			Usage:   "Publish run results to Kafka (connection via KAFKA_* env)",
			EnvVars: []string{"KAFKA_SINK"},
			Value:   false,
		},
	}
}
