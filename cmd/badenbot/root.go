package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/badenlabs/badenbot/internal/config"
	"github.com/badenlabs/badenbot/pkg/log"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "badenbot",
	Short: "Tourist assistant for Núi Bà Đen",
	Long:  `BadenBot answers visitor questions about the Núi Bà Đen tourist site over Telegram, backed by a local knowledge base and live ticket prices.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
