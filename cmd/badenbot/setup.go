package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/badenlabs/badenbot/internal/config"
	"github.com/badenlabs/badenbot/internal/core"
	"github.com/badenlabs/badenbot/internal/providers/llm"
	"github.com/badenlabs/badenbot/internal/providers/sunworld"
	"github.com/badenlabs/badenbot/internal/service/assistant"
	"github.com/badenlabs/badenbot/internal/service/conversation"
	"github.com/badenlabs/badenbot/internal/service/knowledge"
	"github.com/badenlabs/badenbot/internal/storage/sqlite"
	"github.com/badenlabs/badenbot/internal/transport/telegram"
	"github.com/badenlabs/badenbot/pkg/log"
	"github.com/badenlabs/badenbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	err := initEnv(ctx, config.GetRuntimePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Storage
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))
	store := sqlite.NewStore(db)

	// 3. LLM Provider
	gen, err := llm.NewProvider(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 4. Price feed (optional)
	var prices core.PriceUpdater
	swCfg := config.NewSunworldConfig(ctx)
	if swCfg.Enabled() {
		prices = sunworld.NewUpdater(swCfg, store)
	} else {
		logger.Info().Msg("price feed disabled, no subscription key")
	}

	// 5. Knowledge cache, warmed before the transports come up
	cache := knowledge.NewCache(store)
	items := cache.FetchItems(ctx, true)
	logger.Info().Int("items", len(items)).Msg("knowledge snapshot loaded")

	// 6. Assistant
	bot := assistant.New(assistant.Config{
		Cache:   cache,
		History: conversation.NewStore(),
		Gen:     gen,
		Prices:  prices,
		Hotline: appCfg.Hotline,
		TopK:    appCfg.TopK,
	})

	// 7. Transports
	transports, err := initTransports(ctx, appCfg, bot)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initTransports(ctx context.Context, cfg *config.AppConfig, bot *assistant.Assistant) ([]srv.Service, error) {
	var services []srv.Service

	// Telegram Bot
	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		tg, err := telegram.NewBot(ctx, tgCfg, bot)
		if err != nil {
			return nil, err
		}
		services = append(services, tg)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
