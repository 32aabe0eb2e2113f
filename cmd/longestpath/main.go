package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/long2k5-bit/ds2026/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.LongestPath(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
