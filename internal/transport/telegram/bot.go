package telegram

import (
	"context"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/badenlabs/badenbot/internal/config"
	"github.com/badenlabs/badenbot/internal/service/assistant"
	"github.com/badenlabs/badenbot/pkg/log"
)

const baseContextKey = "base_context"

// Bot is the public visitor-facing transport. Anyone may message it, so
// there is no sender gating.
type Bot struct {
	bot       *tele.Bot
	cfg       *config.TelegramConfig
	assistant *assistant.Assistant
	sender    *sender
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	assistant *assistant.Assistant,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:       b,
		cfg:       cfg,
		assistant: assistant,
		sender:    newSender(b),
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	from := c.Sender()
	userID := fmt.Sprintf("telegram-%d", from.ID)
	userName := from.FirstName
	if userName == "" {
		userName = from.Username
	}

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	response := b.assistant.Handle(ctx, userID, userName, c.Text())
	if response == "" {
		return nil
	}

	if err := b.sender.sendMarkdown(ctx, c.Chat(), response, false); err != nil {
		logger.Error().Err(err).Int64("chat", c.Chat().ID).Msg("failed to deliver reply")
	}
	return nil
}
