package config

import (
	"context"

	"github.com/badenlabs/badenbot/pkg/log"
	"github.com/caarlos0/env/v11"
)

// CustomLLMConfig points the bot at any OpenAI-compatible endpoint.
type CustomLLMConfig struct {
	BaseURL string `env:"CUSTOM_LLM_BASE_URL"`
	APIKey  string `env:"CUSTOM_LLM_API_KEY"`
	Model   string `env:"CUSTOM_LLM_MODEL"`
}

func NewCustomLLMConfig(ctx context.Context) *CustomLLMConfig {
	c := &CustomLLMConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse custom LLM config")
	}
	return c
}
