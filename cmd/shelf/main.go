// Command shelf is a terminal client for a remote product catalog.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cristianoliveira/shelf/cmd"
	"github.com/cristianoliveira/shelf/internal/colors"
	"github.com/cristianoliveira/shelf/internal/config"
	"github.com/cristianoliveira/shelf/internal/errors"
	"github.com/cristianoliveira/shelf/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], executeRoot))
}

// run loads configuration and logging, then executes args. No args opens
// the interactive UI.
func run(args []string, execute func(ctx context.Context, args []string) error) int {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("logging disabled: %v", err))
	}
	defer func() {
		if err := logging.ShutdownGlobal(); err != nil {
			colors.Debug(fmt.Sprintf("closing log file: %v", err))
		}
	}()

	if len(args) == 0 {
		args = []string{"tui"}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.With("component", "main", "command", args[0])
	log.Debug("started")
	if err := execute(ctx, args); err != nil {
		log.Error("failed", "error", err.Error())
		errors.NewDefaultCLIHandler().Error(err.Error())
		return 1
	}
	log.Debug("completed")
	return 0
}

func executeRoot(ctx context.Context, args []string) error {
	defer func() {
		if err := catalogRuntime.Close(); err != nil {
			colors.Warning(fmt.Sprintf("closing store: %v", err))
		}
	}()
	return cmd.Execute(ctx, args)
}
