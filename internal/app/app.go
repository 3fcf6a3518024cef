package app

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"permission-bot/internal/config"
	"permission-bot/internal/dispatch"
	"permission-bot/internal/notifier"
	"permission-bot/internal/platform"
	"permission-bot/internal/repository"
	"permission-bot/internal/service"
)

func Run(cfg config.Config, logger *zap.SugaredLogger) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	wg := &sync.WaitGroup{}

	// Delayed services (storage, writers) shut down only after the consumer
	// has drained, so in-flight events can still reach them.
	delayedCtx, delayedCancel := context.WithCancel(context.Background())
	delayedWg := &sync.WaitGroup{}

	var repo repository.Repository
	switch cfg.Settings.Backend {
	case config.BackendFile:
		repo = repository.NewFileRepository(logger, cfg.Settings.Path)
	case config.BackendMongo:
		var err error
		repo, err = repository.NewMongoRepository(delayedCtx, logger, delayedWg, cfg.MongoDB)
		if err != nil {
			logger.Fatalw("failed to create repository", "error", err)
		}
	default:
		logger.Fatalw("unknown settings backend", "backend", cfg.Settings.Backend)
	}

	dir, err := platform.NewMongoDirectory(delayedCtx, logger, delayedWg, cfg.MongoDB, cfg.BotOwner)
	if err != nil {
		logger.Fatalw("failed to create thread directory", "error", err)
	}

	messenger := platform.NewKafkaMessenger(delayedCtx, delayedWg, logger, cfg.Kafka)
	notif := notifier.NewKafkaNotifier(delayedCtx, delayedWg, logger, cfg.Kafka)

	perms := service.NewPermissions(logger, repo, dir)
	registry := dispatch.NewRegistry(logger, perms)
	registry.Register(service.NewPermissionCommand(logger, perms, registry, messenger, dir, notif))

	dispatch.RunConsumer(ctx, logger, wg, cfg.Kafka, registry)

	wg.Wait()
	logger.Info("shutting down")

	logger.Info("shutting down delayed services")
	delayedCancel()
	delayedWg.Wait()
}
