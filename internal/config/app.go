package config

import (
	"context"
	"path/filepath"

	"github.com/badenlabs/badenbot/pkg/log"
	"github.com/caarlos0/env/v9"
)

type AppConfig struct {
	RuntimePath string `env:"BADENBOT_RUNTIME_PATH" envDefault:".badenbot"`
	// Allow selecting the provider
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"gemini"`

	// Transport Flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"true"`

	// Shown to visitors when no relevant information is found.
	Hotline string `env:"BADENBOT_HOTLINE" envDefault:"0276 3829 829"`

	// Knowledge items handed to the model per answer.
	TopK int `env:"BADENBOT_TOP_K" envDefault:"8"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "badenbot.db")
}
