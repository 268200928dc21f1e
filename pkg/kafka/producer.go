// Package kafka provides a synchronous producer for publishing run results
// to a broker.
package kafka

import (
	"context"
	"fmt"
	"sync"
	"time"

	confluent "github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"go.uber.org/zap"
)

// Msg is a single message to publish.
type Msg struct {
	Topic string
	Key   []byte
	Value []byte
}

// Producer is a synchronous Kafka producer.
//
// Produce blocks until a delivery confirmation is received from the broker.
// A background goroutine drains producer events; Close must be called at
// least once to stop it and flush in-flight messages.
type Producer struct {
	producer   *confluent.Producer
	log        *zap.SugaredLogger
	eventsDone chan struct{}
	closedCh   chan struct{}
	once       sync.Once
}

const queueFullRetryDelay = time.Second

// NewProducer creates a producer from librdkafka settings. The context bounds
// the lifetime of the event-draining goroutine.
func NewProducer(ctx context.Context, conf *confluent.ConfigMap, log *zap.SugaredLogger) (*Producer, error) {
	p, err := confluent.NewProducer(conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	prod := &Producer{
		producer:   p,
		log:        log,
		eventsDone: make(chan struct{}),
		closedCh:   make(chan struct{}),
	}
	go prod.drainEvents(ctx)
	return prod, nil
}

// Produce publishes one message and waits for its delivery receipt. If the
// local queue is full the send is retried until the context expires. A
// context error does not guarantee the message was not delivered; callers
// retrying must tolerate duplicates.
func (p *Producer) Produce(ctx context.Context, msg Msg) error {
	deliveryCh := make(chan confluent.Event, 1)
	defer close(deliveryCh)

	kMsg := &confluent.Message{
		TopicPartition: confluent.TopicPartition{
			Topic:     &msg.Topic,
			Partition: confluent.PartitionAny,
		},
		Key:   msg.Key,
		Value: msg.Value,
	}

	for {
		err := p.producer.Produce(kMsg, deliveryCh)
		if err == nil {
			break
		}
		kafkaErr, ok := err.(confluent.Error)
		if !ok || kafkaErr.Code() != confluent.ErrQueueFull {
			return fmt.Errorf("failed to produce: %w", err)
		}
		p.log.Warnw("producer queue full, retrying", "delay", queueFullRetryDelay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(queueFullRetryDelay):
		}
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case ev := <-deliveryCh:
		m, ok := ev.(*confluent.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery event: %T", ev)
		}
		if err := m.TopicPartition.Error; err != nil {
			return fmt.Errorf("delivery failed: %w", err)
		}
		p.log.Debugw("delivered",
			"topic", msg.Topic,
			"partition", m.TopicPartition.Partition,
			"offset", m.TopicPartition.Offset,
		)
		return nil
	}
}

// Close stops the event goroutine and flushes pending messages, waiting at
// most timeout. Safe to call more than once.
func (p *Producer) Close(timeout time.Duration) {
	p.once.Do(func() {
		close(p.closedCh)
		<-p.eventsDone

		pending := p.producer.Flush(int(timeout.Milliseconds()))
		if pending > 0 {
			p.log.Warnw("flush incomplete, messages will be lost", "pending", pending)
		}
		p.producer.Close()
	})
}

func (p *Producer) drainEvents(ctx context.Context) {
	defer close(p.eventsDone)
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.closedCh:
			return
		case ev, ok := <-p.producer.Events():
			if !ok {
				return
			}
			switch e := ev.(type) {
			case confluent.Error:
				if e.IsFatal() || e.Code() == confluent.ErrAllBrokersDown {
					p.log.Errorw("fatal kafka error", "code", e.Code(), "error", e)
				} else {
					p.log.Warnw("kafka error", "code", e.Code(), "error", e)
				}
			default:
				p.log.Debugw("kafka event", "event", fmt.Sprintf("%v", e))
			}
		}
	}
}
