package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"my-admin/internal/cli"
	"my-admin/internal/config"
	"my-admin/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration from .env, the environment and defaults; flags are applied per command
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return 1
	}
	logging.Setup(cfg.Application.Verbose)
	logging.Debugf("loaded configuration: environment=%s backend=%s dir=%s", config.GetEnvironment(), cfg.Storage.Backend, cfg.Storage.Dir)

	// Interrupts end current --watch and abort in-flight commands cleanly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cfg, newContainerFactory(config.GetEnvironment()))
	if err := root.ExecuteContext(ctx); err != nil {
		logging.Debugln("command failed:", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
