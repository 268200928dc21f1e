package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/rolluplabs/evm-conformance/internal/chainclient/evm"
	"github.com/rolluplabs/evm-conformance/internal/conformance"
	"github.com/rolluplabs/evm-conformance/internal/wallet"
	"github.com/rolluplabs/evm-conformance/pkg/clickhouse"
	"github.com/rolluplabs/evm-conformance/pkg/kafka"
	"github.com/rolluplabs/evm-conformance/pkg/metrics"
	"github.com/rolluplabs/evm-conformance/pkg/report"
	chsink "github.com/rolluplabs/evm-conformance/pkg/report/clickhouse"
	kafkasink "github.com/rolluplabs/evm-conformance/pkg/report/kafka"
	"github.com/rolluplabs/evm-conformance/pkg/utils"
)

func run(c *cli.Context) error {
	cfg := buildConfig(c)

	sugar, err := utils.NewSugaredLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer sugar.Desugar().Sync() //nolint:errcheck // best-effort flush; ignore sync errors

	sugar.Infow("config",
		"verbose", cfg.Verbose,
		"rpcURL", cfg.RPCURL,
		"checks", cfg.Checks,
		"parallelism", cfg.Parallelism,
		"receiptTimeout", cfg.ReceiptTimeout,
		"metricsHost", cfg.MetricsHost,
		"metricsPort", cfg.MetricsPort,
		"environment", cfg.Environment,
		"clickhouseSink", cfg.ClickHouseSink,
		"kafkaSink", cfg.KafkaSink,
	)

	expect, err := conformance.LoadExpectations()
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	m, err := metrics.NewWithLabels(registry, metrics.Labels{
		ChainID:     expect.ChainID,
		Environment: cfg.Environment,
	})
	if err != nil {
		return fmt.Errorf("failed to create metrics: %w", err)
	}

	metricsServer := metrics.NewServer(cfg.MetricsAddr(), registry)
	metricsErrCh := metricsServer.Start()
	sugar.Infof("metrics server listening on http://%s/metrics", cfg.MetricsAddr())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := evm.Dial(ctx, cfg.RPCURL,
		evm.WithMetrics(m),
		evm.WithReceiptTimeout(cfg.ReceiptTimeout),
	)
	if err != nil {
		return fmt.Errorf("failed to dial rpc: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to query chain id: %w", err)
	}
	sugar.Infow("connected", "chainID", chainID)

	root, err := wallet.FromHexKey(cfg.PrivateKey, chainID)
	if err != nil {
		return err
	}
	if err := root.SyncNonce(ctx, client); err != nil {
		return err
	}
	sugar.Infow("root account ready", "address", root.Address())

	env := &conformance.Env{
		Client:  client,
		Funder:  wallet.NewFunder(root, client, sugar),
		Expect:  expect,
		Log:     sugar,
		Metrics: m,
	}

	checks, err := conformance.Filter(conformance.Catalog(), cfg.Checks)
	if err != nil {
		return err
	}

	runner, err := conformance.NewRunner(env, checks, cfg.Parallelism)
	if err != nil {
		return err
	}

	startedAt := time.Now()
	results, err := runner.Run(ctx)
	finishedAt := time.Now()
	if errors.Is(err, context.Canceled) {
		sugar.Infow("exiting due to context cancellation")
		return err
	}
	if err != nil {
		sugar.Errorw("run failed", "error", err)
		return err
	}

	for _, r := range results {
		fmt.Println(r)
	}
	passed, failed := conformance.Summarize(results)
	fmt.Printf("%d passed, %d failed\n", passed, failed)

	record := report.NewRun(chainID.Uint64(), cfg.RPCURL, startedAt, finishedAt, results)
	if err := writeSinks(ctx, cfg, sugar, record); err != nil {
		return err
	}

	select {
	case err := <-metricsErrCh:
		if err != nil {
			sugar.Warnw("metrics server error", "error", err)
		}
	default:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		sugar.Warnw("metrics server shutdown error", "error", err)
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d checks failed", failed, len(results)), 1)
	}
	return nil
}

// writeSinks persists the run to every enabled sink. A sink failure is an
// error: results silently lost defeat the point of running the suite.
func writeSinks(ctx context.Context, cfg *Config, sugar *zap.SugaredLogger, run report.Run) error {
	if cfg.ClickHouseSink {
		chCfg, err := clickhouse.Load()
		if err != nil {
			return err
		}
		chClient, err := clickhouse.New(chCfg, sugar)
		if err != nil {
			return fmt.Errorf("failed to create ClickHouse client: %w", err)
		}
		repo, err := chsink.NewRepository(ctx, chClient, chCfg.Database)
		if err != nil {
			chClient.Close() //nolint:errcheck
			return err
		}
		if err := repo.WriteRun(ctx, run); err != nil {
			repo.Close() //nolint:errcheck
			return err
		}
		if err := repo.Close(); err != nil {
			sugar.Warnw("clickhouse close error", "error", err)
		}
		sugar.Infow("run persisted to clickhouse", "runID", run.ID)
	}

	if cfg.KafkaSink {
		kCfg, err := kafka.LoadProducerConfig()
		if err != nil {
			return err
		}
		producer, err := kafka.NewProducer(ctx, kCfg.ConfigMap(), sugar)
		if err != nil {
			return fmt.Errorf("failed to create kafka producer: %w", err)
		}
		emitter := kafkasink.NewEmitter(producer, kCfg.Topic, kCfg.FlushTimeout)
		if err := emitter.WriteRun(ctx, run); err != nil {
			emitter.Close() //nolint:errcheck
			return err
		}
		if err := emitter.Close(); err != nil {
			sugar.Warnw("kafka close error", "error", err)
		}
		sugar.Infow("run published to kafka", "runID", run.ID, "topic", kCfg.Topic)
	}

	return nil
}
