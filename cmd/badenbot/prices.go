package main

import (
	"github.com/spf13/cobra"

	"github.com/badenlabs/badenbot/internal/config"
	"github.com/badenlabs/badenbot/internal/providers/sunworld"
	"github.com/badenlabs/badenbot/internal/storage/sqlite"
	"github.com/badenlabs/badenbot/pkg/log"
)

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Fetch the ticket catalog and refresh the stored price sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		logger := log.FromCtx(ctx)

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			logger.Fatal().Err(err).Msg("failed to init env")
		}

		appCfg := config.NewAppConfig(ctx)
		swCfg := config.NewSunworldConfig(ctx)
		if !swCfg.Enabled() {
			logger.Fatal().Msg("SUNWORLD_SUBSCRIPTION_KEY is not set")
		}

		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to open database")
		}
		defer db.Close()

		updater := sunworld.NewUpdater(swCfg, sqlite.NewStore(db))
		report, err := updater.UpdatePrices(ctx)
		if err != nil {
			return err
		}

		logger.Info().
			Int("products", report.TotalProducts).
			Interface("categories", report.Categories).
			Msg("price sheet refreshed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pricesCmd)
}
