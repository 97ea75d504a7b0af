// Command offerstatus evaluates the collective lifecycle engine offline and runs maintenance jobs.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const usage = `usage:
  offerstatus --snapshot offer.jsonc [--now RFC3339] [--legacy] [--out result.json]
  offerstatus expire [--batch N]
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, out, errOut io.Writer, args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "expire":
			return cmdExpire(ctx, out, errOut, args[1:])
		case "help", "-h", "--help":
			fmt.Fprint(out, usage)
			return 0
		}
	}
	return cmdEvaluate(out, errOut, args)
}
