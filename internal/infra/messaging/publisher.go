package messaging

import (
	"context"
	"log/slog"
	"time"

	"collective-lifecycle/internal/pkg/clock"
	"collective-lifecycle/internal/pkg/config"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const eventTypeHeader = "event_type"

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

// OutboxPublisher relays outbox rows to Kafka. Rows are claimed and marked inside one
// transaction, so a failed write leaves them for the next tick (at-least-once delivery).
type OutboxPublisher struct {
	uow    shared.UnitOfWork
	writer MessageWriter
	clock  clock.Clock
	tick   time.Duration
	batch  int
}

func NewOutboxPublisher(uow shared.UnitOfWork, writer MessageWriter, clk clock.Clock, cfg config.KafkaConfig) *OutboxPublisher {
	batch := cfg.PublishBatch
	if batch <= 0 {
		batch = 100
	}
	tick := cfg.PublishTick
	if tick <= 0 {
		tick = time.Second
	}
	return &OutboxPublisher{uow: uow, writer: writer, clock: clk, tick: tick, batch: batch}
}

func (p *OutboxPublisher) Run(ctx context.Context) {
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := p.PublishPending(ctx); err != nil && ctx.Err() == nil {
				slog.Error("outbox publish failed", "error", err.Error())
			}
		case <-ctx.Done():
			return
		}
	}
}

// PublishPending relays one batch and returns how many events were published.
func (p *OutboxPublisher) PublishPending(ctx context.Context) (int, error) {
	published := 0

	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		events, err := tx.Outbox().ClaimUnpublished(ctx, p.batch)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}

		msgs := make([]kafka.Message, len(events))
		ids := make([]uuid.UUID, len(events))
		for i, e := range events {
			msgs[i] = toMessage(e)
			ids[i] = e.ID
		}

		if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
			return err
		}
		if err := tx.Outbox().MarkPublished(ctx, ids, p.clock.Now()); err != nil {
			return err
		}
		published = len(events)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if published > 0 {
		slog.Debug("outbox events published", "count", published)
	}
	return published, nil
}

// toMessage keys by aggregate id so events of one booking or offer stay ordered within a partition.
func toMessage(e shared.OutboxEvent) kafka.Message {
	return kafka.Message{
		Key:   []byte(e.AggregateID.String()),
		Value: e.Payload,
		Headers: []kafka.Header{
			{Key: eventTypeHeader, Value: []byte(e.EventType)},
			{Key: "aggregate_type", Value: []byte(e.AggregateType)},
			{Key: "event_id", Value: []byte(e.ID.String())},
		},
		Time: e.CreatedAt,
	}
}
