// Package report turns executed check results into durable records. Sinks
// persist a run so endpoint behavior can be compared across node versions.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rolluplabs/evm-conformance/internal/conformance"
)

// Run is one complete suite execution against one endpoint.
type Run struct {
	ID         string
	ChainID    uint64
	Endpoint   string
	StartedAt  time.Time
	FinishedAt time.Time
	Results    []CheckResult
}

// CheckResult is the persisted form of a single check outcome.
type CheckResult struct {
	Name     string
	Passed   bool
	Error    string
	Duration time.Duration
}

// Sink persists a finished run. Implementations must be safe to call once
// per run; they are not required to support concurrent writers.
type Sink interface {
	WriteRun(ctx context.Context, run Run) error
	Close() error
}

// NewRun converts runner output into a Run record with a fresh identifier.
func NewRun(chainID uint64, endpoint string, startedAt, finishedAt time.Time, results []conformance.Result) Run {
	run := Run{
		ID:         uuid.NewString(),
		ChainID:    chainID,
		Endpoint:   endpoint,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		Results:    make([]CheckResult, 0, len(results)),
	}
	for _, r := range results {
		rec := CheckResult{
			Name:     r.Check,
			Passed:   r.Passed(),
			Duration: r.Duration,
		}
		if r.Err != nil {
			rec.Error = r.Err.Error()
		}
		run.Results = append(run.Results, rec)
	}
	return run
}
