package di

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/samber/do/v2"
	"github.com/samber/oops"

	channelRepo "querywizard/internal/modules/channel/repository"
	channelService "querywizard/internal/modules/channel/service"
	queryService "querywizard/internal/modules/query/service"
	"querywizard/internal/shared/config"
	httpServer "querywizard/internal/transport/http"
	telegramHandler "querywizard/internal/transport/telegram"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Channel Repository
	do.Provide(injector, func(i do.Injector) (channelRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := channelRepo.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize channel repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Channel Service
	do.Provide(injector, func(i do.Injector) (*channelService.Service, error) {
		repo := do.MustInvoke[channelRepo.Repository](i)
		return channelService.New(repo), nil
	})

	// Register Query Service
	do.Provide(injector, func(i do.Injector) (*queryService.Service, error) {
		return queryService.New(), nil
	})

	// Register Telegram Handler
	do.Provide(injector, func(i do.Injector) (*telegramHandler.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		channels := do.MustInvoke[*channelService.Service](i)
		queries := do.MustInvoke[*queryService.Service](i)
		return telegramHandler.New(cfg, channels, queries), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		channels := do.MustInvoke[*channelService.Service](i)
		queries := do.MustInvoke[*queryService.Service](i)
		server := httpServer.New(cfg, channels, queries)
		server.SetLogger(slog.Default())
		return server, nil
	})

	// Register Bot (only constructed when a token is configured)
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.BotEnabled() {
			return nil, oops.Errorf("telegram bot token not configured")
		}

		handler := do.MustInvoke[*telegramHandler.Handler](i)

		b, err := bot.New(cfg.TelegramBotToken)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}

		// Register bot commands
		handler.RegisterCommands(b)

		return b, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx := context.Background()

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return nil
	}

	// Shutdown bot if it exists
	if cfg.BotEnabled() {
		if b, err := do.Invoke[*bot.Bot](injector); err == nil && b != nil {
			b.Close(ctx)
		}
	}

	return nil
}
