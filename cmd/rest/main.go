package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"islamic-quotes-be/internal/bootstrap"
	"islamic-quotes-be/internal/config"
	"islamic-quotes-be/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// 2. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg)
	if err != nil {
		log.Fatalf("Unable to bootstrap container: %v", err)
	}

	if err := server.Serve(ctx, cfg, container); err != nil {
		log.Fatal(err)
	}
}
