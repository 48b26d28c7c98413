package sunworld

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/badenlabs/badenbot/internal/config"
	"github.com/badenlabs/badenbot/pkg/log"
	"github.com/badenlabs/badenbot/pkg/retry"
	"github.com/badenlabs/badenbot/pkg/vntime"
)

// The booking API pages its catalog; anything past this is stale inventory.
const maxPages = 5

// Client fetches the ticket catalog from the Sunworld booking API.
type Client struct {
	http    *http.Client
	retrier *retry.Retrier
	baseURL string
	subKey  string
	land    string
	park    string
	now     func() time.Time
}

func NewClient(cfg *config.SunworldConfig) *Client {
	return &Client{
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
		retrier: retry.NewDefaultRetrier(),
		baseURL: cfg.BaseURL,
		subKey:  cfg.SubscriptionKey,
		land:    cfg.Land,
		park:    cfg.Park,
		now:     vntime.Now,
	}
}

// FetchAllProducts walks the catalog pages and merges in the flexible-date
// listing, deduplicating by product id. Flexible-date entries keep precedence
// because they carry the prices actually offered for open-dated tickets.
func (c *Client) FetchAllProducts(ctx context.Context) ([]json.RawMessage, error) {
	var all []json.RawMessage

	for page := 1; page <= maxPages; page++ {
		products, err := c.fetchListing(ctx, page, false)
		if err != nil {
			log.FromCtx(ctx).Warn().Err(err).Int("page", page).Msg("catalog page fetch failed")
			break
		}
		if len(products) == 0 {
			break
		}
		all = append(all, products...)
	}

	flexible, err := c.fetchListing(ctx, 1, true)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("flexible-date fetch failed")
	} else {
		all = append(all, flexible...)
	}

	unique := dedupeByID(all)
	if len(unique) == 0 {
		return nil, fmt.Errorf("no products returned")
	}
	return unique, nil
}

func (c *Client) fetchListing(ctx context.Context, page int, flexibleDate bool) ([]json.RawMessage, error) {
	flexible := "0"
	if flexibleDate {
		flexible = "1"
	}

	params := url.Values{
		"page":         {fmt.Sprint(page)},
		"channel":      {"b2c"},
		"ageTypeMulti": {"1"},
		"flexibleDate": {flexible},
		"date":         {c.now().Format("2006-01-02")},
		"land":         {c.land},
		"park":         {c.park},
	}

	var products []json.RawMessage
	err := c.retrier.Do(ctx, func() error {
		var err error
		products, err = c.doListing(ctx, params)
		return err
	})
	return products, err
}

func (c *Client) doListing(ctx context.Context, params url.Values) ([]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/spl/show/listing?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("apim-sub-key", c.subKey)
	req.Header.Set("accept", "application/json")
	req.Header.Set("user-agent", "Mozilla/5.0")
	req.Header.Set("origin", "https://booking.sunworld.vn")
	req.Header.Set("referer", "https://booking.sunworld.vn/")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}

	var payload struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}
	return payload.Data, nil
}

func dedupeByID(products []json.RawMessage) []json.RawMessage {
	type keyed struct {
		ID json.Number `json:"id"`
	}

	index := make(map[string]int, len(products))
	var unique []json.RawMessage

	for _, raw := range products {
		var k keyed
		if err := json.Unmarshal(raw, &k); err != nil || k.ID == "" {
			continue
		}
		if at, seen := index[k.ID.String()]; seen {
			// Later pass wins so flexible-date prices override.
			unique[at] = raw
			continue
		}
		index[k.ID.String()] = len(unique)
		unique = append(unique, raw)
	}
	return unique
}
