package bootstrap

import (
	"context"
	"log/slog"

	"collective-lifecycle/internal/infra/messaging"
	"collective-lifecycle/internal/pkg/clock"
	"collective-lifecycle/internal/pkg/config"
	"collective-lifecycle/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		fx.Annotate(
			messaging.NewKafkaWriter,
			fx.As(new(messaging.MessageWriter)),
		),
		NewOutboxPublisher,
	),
	fx.Invoke(startOutboxPublisher),
)

func NewOutboxPublisher(uow shared.UnitOfWork, writer messaging.MessageWriter, clk clock.Clock, cfg config.Config) *messaging.OutboxPublisher {
	return messaging.NewOutboxPublisher(uow, writer, clk, cfg.Kafka)
}

func startOutboxPublisher(lc fx.Lifecycle, p *messaging.OutboxPublisher, writer messaging.MessageWriter, cfg config.Config, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if cfg.Kafka.PublisherOff {
				logger.Info("outbox publisher disabled")
				close(done)
				return nil
			}
			go func() {
				defer close(done)
				p.Run(ctx)
			}()
			logger.Info("outbox publisher started", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return writer.Close()
		},
	})
}
