package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"sueahahn/internal/adapter/facade"
	"sueahahn/internal/domain/entity"
	"sueahahn/internal/infrastructure/broadcast"
	"sueahahn/internal/infrastructure/slot"
	"sueahahn/internal/store"
	"sueahahn/internal/worker"
	"sueahahn/pkg/config"
	"sueahahn/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	durable, err := slot.NewFile(cfg.DataDir, cfg.StorageKey)
	if err != nil {
		log.Fatalf("Failed to open durable slot: %v", err)
	}
	defer durable.Close()

	// Sibling processes sharing the data directory see each other's
	// commits through the slot file itself.
	channel, err := broadcast.NewSlotWatcher(durable.FilePath())
	if err != nil {
		log.Fatalf("Failed to watch slot file: %v", err)
	}
	defer channel.Close()

	st := store.New(durable, channel)
	if err := st.Load(ctx); err != nil {
		log.Fatalf("Failed to load store: %v", err)
	}
	defer st.Close()

	app, err := facade.New(st, cfg)
	if err != nil {
		log.Fatalf("Failed to build facade: %v", err)
	}

	sweeper, err := worker.NewRetentionSweeper(app.Notifications, cfg.RetentionCron)
	if err != nil {
		log.Fatalf("Failed to schedule retention sweeper: %v", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	unsubscribe := app.Subscribe(func(doc *entity.Document) {
		logger.Debug("document now at version %d: %d users, %d items, %d orders",
			doc.Version, len(doc.Users), len(doc.FoodItems), len(doc.Orders))
	})
	defer unsubscribe()

	logger.Info("sueahahn store ready, document at %s (key %s)", cfg.DataDir, cfg.StorageKey)
	<-ctx.Done()
	logger.Info("shutting down")
}
