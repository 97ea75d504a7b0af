package components

import (
	"context"
	"log/slog"
	"time"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/pkg/clock"
	"collective-lifecycle/internal/pkg/config"
	"collective-lifecycle/internal/usecase"
	"collective-lifecycle/internal/usecase/commands"
	"collective-lifecycle/internal/usecase/queries"
	"collective-lifecycle/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	fx.Invoke(startExpirationTicker),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewOfferCommands,
		commands.NewTemplateCommands,
		func(uow shared.UnitOfWork, guard shared.IdempotencyGuard, engine *collective.Engine, clk clock.Clock, cfg config.Config) commands.BookingCommands {
			return commands.NewBookingCommands(uow, guard, engine, clk, cfg.Lifecycle.ConfirmationWindow)
		},
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.ExpirationCommands {
			return commands.NewExpirationCommands(uow, clk, cfg.Lifecycle.ExpirationBatch)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewOfferQueries,
		queries.NewTemplateQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
		usecase.NewProviderAuthenticator,
	),
)

func startExpirationTicker(lc fx.Lifecycle, cmds commands.ExpirationCommands, cfg config.Config, logger *slog.Logger) {
	tick := cfg.Lifecycle.ExpirationTick
	if tick <= 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(tick)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if _, err := cmds.ExpirePendingBookings(ctx); err != nil && ctx.Err() == nil {
							logger.Error("booking expiration failed", "error", err.Error())
						}
					case <-ctx.Done():
						return
					}
				}
			}()
			logger.Info("booking expiration ticker started", "tick", tick)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
