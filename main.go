package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gaze-network/orc20-indexer/cmd"
)

func main() {
	// cancelled on the first signal; `run` installs its own handler for a forced exit
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Execute(ctx)
}
