package llm

import (
	"context"
	"fmt"

	"github.com/badenlabs/badenbot/internal/config"
	"github.com/badenlabs/badenbot/internal/core"
	"github.com/badenlabs/badenbot/pkg/log"
)

// NewProvider creates the appropriate Generator based on configuration.
func NewProvider(ctx context.Context, cfg *config.AppConfig) (core.Generator, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.LLMProvider).
		Msg("starting llm provider")

	switch cfg.LLMProvider {
	case "gemini":
		gc := config.NewGeminiConfig(ctx)
		return NewGemini(gc.APIKey, gc.Model), nil
	case "openai":
		cc := config.NewCustomLLMConfig(ctx)
		return NewOpenAI(cc.APIKey, cc.Model), nil
	case "custom":
		cc := config.NewCustomLLMConfig(ctx)
		return NewCustomOpenAI(cc.BaseURL, cc.APIKey, cc.Model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}
