package sunworld

import (
	"context"
	"fmt"
	"time"

	"github.com/badenlabs/badenbot/internal/config"
	"github.com/badenlabs/badenbot/internal/core"
	"github.com/badenlabs/badenbot/pkg/log"
	"github.com/badenlabs/badenbot/pkg/vntime"
)

// PriceTopic is the knowledge base topic the price sheet is stored under.
const PriceTopic = "Giá vé cáp treo mới nhất"

// KnowledgeWriter persists a rendered price sheet.
type KnowledgeWriter interface {
	UpsertKnowledge(ctx context.Context, topic, content string) error
}

// Updater pulls the ticket catalog, renders the price sheet and writes it to
// the knowledge base.
type Updater struct {
	client *Client
	writer KnowledgeWriter
	land   string
	park   string
	now    func() time.Time
}

func NewUpdater(cfg *config.SunworldConfig, writer KnowledgeWriter) *Updater {
	return &Updater{
		client: NewClient(cfg),
		writer: writer,
		land:   cfg.Land,
		park:   cfg.Park,
		now:    vntime.Now,
	}
}

func (u *Updater) UpdatePrices(ctx context.Context) (core.PriceReport, error) {
	started := time.Now()

	raws, err := u.client.FetchAllProducts(ctx)
	if err != nil {
		return core.PriceReport{}, fmt.Errorf("fetch products: %w", err)
	}

	products := ProcessProducts(raws)
	markdown := RenderMarkdown(products, u.land, u.park, u.now())

	if err := u.writer.UpsertKnowledge(ctx, PriceTopic, markdown); err != nil {
		return core.PriceReport{}, fmt.Errorf("store price sheet: %w", err)
	}

	categories := make(map[string]int)
	for _, p := range products {
		categories[p.Category]++
	}

	log.FromCtx(ctx).Info().
		Int("products", len(products)).
		Int("markdown_bytes", len(markdown)).
		Dur("elapsed", time.Since(started)).
		Msg("price sheet updated")

	return core.PriceReport{
		TotalProducts: len(products),
		Categories:    categories,
		MarkdownBytes: len(markdown),
	}, nil
}
