package knowledge

import (
	"context"
	"sync"
	"time"

	"github.com/badenlabs/badenbot/internal/core"
	"github.com/badenlabs/badenbot/pkg/log"
)

const cacheTTL = 15 * time.Minute

// Cache holds the flattened, deduplicated knowledge snapshot and refreshes it
// from the backing source when the TTL lapses.
type Cache struct {
	mu     sync.Mutex
	source core.ItemSource
	ttl    time.Duration
	now    func() time.Time

	items     []core.Item
	fetchedAt time.Time
}

func NewCache(source core.ItemSource) *Cache {
	return &Cache{
		source: source,
		ttl:    cacheTTL,
		now:    time.Now,
	}
}

// FetchItems returns the current snapshot, refreshing it first when forced or
// expired. A refresh where every source fails keeps the previous snapshot;
// partial failures produce a snapshot from whatever succeeded.
func (c *Cache) FetchItems(ctx context.Context, force bool) []core.Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !force && !c.fetchedAt.IsZero() && c.now().Sub(c.fetchedAt) < c.ttl {
		return copyItems(c.items)
	}

	items, ok := c.ingest(ctx)
	if !ok {
		log.FromCtx(ctx).Warn().Msg("all knowledge sources failed, serving previous snapshot")
		return copyItems(c.items)
	}

	c.items = Deduplicate(items)
	c.fetchedAt = c.now()
	log.FromCtx(ctx).Debug().Int("items", len(c.items)).Msg("knowledge snapshot refreshed")

	return copyItems(c.items)
}

// Invalidate expires the snapshot so the next FetchItems refreshes. The stale
// items are kept as a fallback in case the refresh fails outright.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchedAt = time.Time{}
}

// ingest pulls each source independently so one failing source cannot take
// the others down with it. Returns ok=false only when every source errored.
func (c *Cache) ingest(ctx context.Context) ([]core.Item, bool) {
	logger := log.FromCtx(ctx)
	now := c.now()

	var items []core.Item
	var succeeded int

	if rows, err := c.source.Knowledge(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to load knowledge base entries")
	} else {
		succeeded++
		for _, row := range rows {
			items = append(items, itemFromKnowledge(row, now))
		}
	}

	if rows, err := c.source.POIs(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to load points of interest")
	} else {
		succeeded++
		for _, row := range rows {
			items = append(items, itemFromPOI(row, now))
		}
	}

	if rows, err := c.source.OperatingHours(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to load operating hours")
	} else {
		succeeded++
		for _, row := range rows {
			items = append(items, itemFromHours(row, now))
		}
	}

	return items, succeeded > 0
}

func copyItems(items []core.Item) []core.Item {
	if len(items) == 0 {
		return nil
	}
	out := make([]core.Item, len(items))
	copy(out, items)
	return out
}
