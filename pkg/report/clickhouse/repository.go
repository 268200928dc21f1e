// Package clickhouse persists conformance runs to a ClickHouse database.
package clickhouse

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/rolluplabs/evm-conformance/pkg/clickhouse"
	"github.com/rolluplabs/evm-conformance/pkg/report"
)

//go:embed queries/create-runs-table.sql
var createRunsTableQuery string

//go:embed queries/create-results-table.sql
var createResultsTableQuery string

//go:embed queries/insert-run.sql
var insertRunQuery string

//go:embed queries/insert-result.sql
var insertResultQuery string

// Default table names. Overridable for shared clusters.
const (
	DefaultRunsTable    = "conformance_runs"
	DefaultResultsTable = "conformance_results"
)

// Repository writes runs and per-check results into two MergeTree tables.
type Repository struct {
	client       clickhouse.Client
	database     string
	runsTable    string
	resultsTable string
}

var _ report.Sink = (*Repository)(nil)

// NewRepository creates the tables if needed and returns a ready sink.
func NewRepository(ctx context.Context, client clickhouse.Client, database string) (*Repository, error) {
	repo := &Repository{
		client:       client,
		database:     database,
		runsTable:    DefaultRunsTable,
		resultsTable: DefaultResultsTable,
	}
	if err := repo.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to create result tables: %w", err)
	}
	return repo, nil
}

// Initialize ensures both tables exist.
func (r *Repository) Initialize(ctx context.Context) error {
	query := fmt.Sprintf(createRunsTableQuery, r.database, r.runsTable)
	if err := r.client.Conn().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create runs table: %w", err)
	}

	query = fmt.Sprintf(createResultsTableQuery, r.database, r.resultsTable)
	if err := r.client.Conn().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create results table: %w", err)
	}
	return nil
}

// WriteRun persists the run header and one row per check result.
func (r *Repository) WriteRun(ctx context.Context, run report.Run) error {
	passed, failed := 0, 0
	for _, res := range run.Results {
		if res.Passed {
			passed++
		} else {
			failed++
		}
	}

	query := fmt.Sprintf(insertRunQuery, r.database, r.runsTable)
	err := r.client.Conn().Exec(ctx, query,
		run.ID, run.ChainID, run.Endpoint, run.StartedAt, run.FinishedAt,
		uint32(passed), uint32(failed))
	if err != nil {
		return fmt.Errorf("failed to write run %s: %w", run.ID, err)
	}

	query = fmt.Sprintf(insertResultQuery, r.database, r.resultsTable)
	for _, res := range run.Results {
		err := r.client.Conn().Exec(ctx, query,
			run.ID, run.ChainID, res.Name, res.Passed, res.Error,
			uint64(res.Duration.Milliseconds()), run.FinishedAt)
		if err != nil {
			return fmt.Errorf("failed to write result %s/%s: %w", run.ID, res.Name, err)
		}
	}
	return nil
}

// Close releases the underlying connection.
func (r *Repository) Close() error {
	return r.client.Close()
}
