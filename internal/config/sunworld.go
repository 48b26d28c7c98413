package config

import (
	"context"

	"github.com/badenlabs/badenbot/pkg/log"
	"github.com/caarlos0/env/v11"
)

// SunworldConfig drives the booking-platform price feed. An empty
// SubscriptionKey disables the price updater entirely.
type SunworldConfig struct {
	BaseURL         string `env:"SUNWORLD_BASE_URL" envDefault:"https://api.sunworld.vn/swg/all/ticket/v1/vi/api"`
	SubscriptionKey string `env:"SUNWORLD_SUBSCRIPTION_KEY"`
	Land            string `env:"SUNWORLD_LAND" envDefault:"SunParadiseLandTayNinh"`
	Park            string `env:"SUNWORLD_PARK" envDefault:"SBD"`
}

func NewSunworldConfig(ctx context.Context) *SunworldConfig {
	c := &SunworldConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Sunworld config")
	}
	return c
}

func (c SunworldConfig) Enabled() bool {
	return c.SubscriptionKey != ""
}
