package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/badenlabs/badenbot/internal/core"
	"github.com/badenlabs/badenbot/internal/service/conversation"
	"github.com/badenlabs/badenbot/internal/service/knowledge"
	"github.com/badenlabs/badenbot/pkg/log"
	"github.com/badenlabs/badenbot/pkg/vntime"
)

// Price sheets older than this are refreshed before answering a price query.
const priceRefreshInterval = 6 * time.Hour

// Price questions widen the refresh trigger to promo wording too.
var priceRefreshVocab = append([]string{"khuyến mãi", "ưu đãi"}, knowledge.PriceQueryVocab...)

// Assistant answers visitor questions by ranking the knowledge snapshot and
// handing the best items to the language model.
type Assistant struct {
	cache    *knowledge.Cache
	history  *conversation.Store
	gen      core.Generator
	prices   core.PriceUpdater // nil when the price feed is not configured
	hotline  string
	topK     int
	now      func() time.Time

	priceMu         sync.Mutex
	lastPriceUpdate time.Time
}

type Config struct {
	Cache   *knowledge.Cache
	History *conversation.Store
	Gen     core.Generator
	Prices  core.PriceUpdater
	Hotline string
	TopK    int
}

func New(cfg Config) *Assistant {
	topK := cfg.TopK
	if topK <= 0 {
		topK = 8
	}
	return &Assistant{
		cache:   cfg.Cache,
		history: cfg.History,
		gen:     cfg.Gen,
		prices:  cfg.Prices,
		hotline: cfg.Hotline,
		topK:    topK,
		now:     vntime.Now,
	}
}

// Handle produces the reply for one incoming message.
func (a *Assistant) Handle(ctx context.Context, userID, userName, text string) string {
	text = strings.TrimSpace(text)
	logger := log.FromCtx(ctx)

	if conversation.IsGreeting(text) {
		response := greetingResponse(userName, a.hotline, a.now())
		a.history.RecordTurn(userID, userName, text, response)
		return response
	}

	a.maybeRefreshPrices(ctx, text)

	items := a.cache.FetchItems(ctx, false)
	ranked := knowledge.Rank(text, items, a.topK)

	if len(ranked) == 0 {
		logger.Debug().Str("user", userID).Msg("no relevant knowledge for query")
		response := noInfoResponse(userName, a.hotline)
		a.history.RecordTurn(userID, userName, text, response)
		return response
	}

	prompt := buildPrompt(promptInput{
		UserName: userName,
		Message:  text,
		History:  a.history.Context(userID),
		Items:    ranked,
		Hotline:  a.hotline,
		Now:      a.now(),
	})

	response, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		logger.Error().Err(err).Msg("generation failed, serving best-match snippet")
		fallback := snippetResponse(ranked[0].Content, a.hotline)
		a.history.RecordTurn(userID, userName, text, fallback)
		return fallback
	}
	response = strings.TrimSpace(response)

	a.history.RecordTurn(userID, userName, text, response)
	return response
}

// maybeRefreshPrices triggers a price feed update on price-related queries,
// at most once per refresh interval. A success invalidates the knowledge
// snapshot so the new sheet is picked up immediately.
func (a *Assistant) maybeRefreshPrices(ctx context.Context, text string) {
	if a.prices == nil {
		return
	}

	lower := strings.ToLower(text)
	var priceQuery bool
	for _, w := range priceRefreshVocab {
		if strings.Contains(lower, w) {
			priceQuery = true
			break
		}
	}
	if !priceQuery {
		return
	}

	a.priceMu.Lock()
	defer a.priceMu.Unlock()

	if !a.lastPriceUpdate.IsZero() && a.now().Sub(a.lastPriceUpdate) < priceRefreshInterval {
		return
	}

	report, err := a.prices.UpdatePrices(ctx)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("price refresh failed")
		return
	}

	a.lastPriceUpdate = a.now()
	a.cache.Invalidate()
	log.FromCtx(ctx).Info().Int("products", report.TotalProducts).Msg("prices refreshed on demand")
}
