// Package kafka publishes run results as JSON events, one message per run,
// keyed by chain ID so all runs of one chain land in the same partition.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rolluplabs/evm-conformance/pkg/kafka"
	"github.com/rolluplabs/evm-conformance/pkg/report"
)

// producer is the publishing surface the emitter needs.
type producer interface {
	Produce(ctx context.Context, msg kafka.Msg) error
	Close(timeout time.Duration)
}

// Emitter publishes finished runs to a topic.
type Emitter struct {
	producer     producer
	topic        string
	flushTimeout time.Duration
}

var _ report.Sink = (*Emitter)(nil)

// NewEmitter wraps a producer. The flush timeout is applied on Close.
func NewEmitter(p *kafka.Producer, topic string, flushTimeout time.Duration) *Emitter {
	return &Emitter{producer: p, topic: topic, flushTimeout: flushTimeout}
}

// runEvent is the wire form of a run.
type runEvent struct {
	RunID      string       `json:"run_id"`
	ChainID    uint64       `json:"chain_id"`
	Endpoint   string       `json:"endpoint"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Results    []checkEvent `json:"results"`
}

type checkEvent struct {
	Name       string `json:"name"`
	Passed     bool   `json:"passed"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// WriteRun serializes the run and publishes it.
func (e *Emitter) WriteRun(ctx context.Context, run report.Run) error {
	event := runEvent{
		RunID:      run.ID,
		ChainID:    run.ChainID,
		Endpoint:   run.Endpoint,
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
		Results:    make([]checkEvent, 0, len(run.Results)),
	}
	for _, r := range run.Results {
		event.Results = append(event.Results, checkEvent{
			Name:       r.Name,
			Passed:     r.Passed,
			Error:      r.Error,
			DurationMS: r.Duration.Milliseconds(),
		})
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal run event %s: %w", run.ID, err)
	}

	return e.producer.Produce(ctx, kafka.Msg{
		Topic: e.topic,
		Key:   []byte(strconv.FormatUint(run.ChainID, 10)),
		Value: value,
	})
}

// Close flushes the underlying producer.
func (e *Emitter) Close() error {
	e.producer.Close(e.flushTimeout)
	return nil
}
