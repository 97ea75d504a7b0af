package main

import (
	"context"
	"fmt"
	"io"

	"collective-lifecycle/internal/handler/middleware"
	"collective-lifecycle/internal/infra/db"
	"collective-lifecycle/internal/infra/uow"
	"collective-lifecycle/internal/pkg/clock"
	"collective-lifecycle/internal/pkg/config"
	"collective-lifecycle/internal/usecase/commands"

	flag "github.com/spf13/pflag"
)

func cmdExpire(ctx context.Context, out, errOut io.Writer, args []string) int {
	flagSet := flag.NewFlagSet("expire", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	batch := flagSet.Int("batch", 0, "bookings cancelled per transaction (defaults to LIFECYCLE_EXPIRATION_BATCH)")

	if err := flagSet.Parse(args); err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	cfg, err := config.LoadJobConfig()
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}
	middleware.NewLogger(cfg.Log)

	if *batch <= 0 {
		*batch = cfg.Lifecycle.ExpirationBatch
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}
	defer cleanup()

	cmds := commands.NewExpirationCommands(uow.NewPostgresUoW(pool), clock.NewRealClock(), *batch)

	n, err := cmds.ExpirePendingBookings(ctx)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	fmt.Fprintf(out, "expired %d pending booking(s)\n", n)
	return 0
}
