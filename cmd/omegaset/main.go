// Command omegaset samples Omega sets for every ballot box of an
// ecological-inference instance and writes them as JSON.
//
// Usage:
//
//	omegaset generate input.json [S] [M] [flags]
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(nil).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
