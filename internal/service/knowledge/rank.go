package knowledge

import (
	"sort"
	"strings"

	"github.com/badenlabs/badenbot/internal/core"
)

// Relevance boosts, each independently evaluated against query intent and
// item text. Combo passes are the highest-value content class and dominate.
const (
	boostPrice        = 10.0
	boostCombo        = 15.0
	boostHoursIntent  = 5.0
	boostHoursCable   = 3.0
	boostPOITransport = 3.0
	boostPOIGeneric   = 0.5
	boostPOISpiritual = 2.0
	boostPOIDining    = 2.0
	boostPOIScenic    = 2.0
)

// KeywordScore rates how well an item answers a query. Token overlap is a
// presence test per token, boosts are additive, and the sum is scaled by the
// item's priority so a fresh schedule can outrank a stale strong match.
// Zero keyword relevance stays zero regardless of priority.
func KeywordScore(query string, item core.Item) float64 {
	q := strings.ToLower(query)
	text := strings.ToLower(item.Topic + " " + item.Content)

	var score float64
	for _, token := range strings.Fields(q) {
		if strings.Contains(text, token) {
			score += 1.0
		}
	}

	if containsAny(q, PriceQueryVocab) && containsAny(text, priceTextVocab) {
		score += boostPrice
	}
	if containsAny(q, comboQueryVocab) && containsAny(text, comboTextVocab) {
		score += boostCombo
	}

	if item.Source == core.SourceHours && containsAny(q, timeQueryVocab) {
		score += boostHoursIntent
		if containsAny(q, cableQueryVocab) {
			score += boostHoursCable
		}
	}

	if item.Source == core.SourcePOI {
		if containsAny(q, cableQueryVocab) {
			if containsAny(text, transportTextVocab) {
				score += boostPOITransport
			} else if containsAny(text, attractionTextVocab) {
				score += boostPOIGeneric
			}
		}
		if containsAny(q, spiritualQueryVocab) && containsAny(text, spiritualTextVocab) {
			score += boostPOISpiritual
		}
		if containsAny(q, diningQueryVocab) && containsAny(text, diningTextVocab) {
			score += boostPOIDining
		}
		if containsAny(q, scenicQueryVocab) && containsAny(text, scenicTextVocab) {
			score += boostPOIScenic
		}
	}

	if score > 0 {
		score *= item.Priority
	}
	return score
}

// Rank returns at most k items ordered by descending relevance. Items that
// score zero are excluded; ties keep input order.
func Rank(query string, items []core.Item, k int) []core.Item {
	if k <= 0 || len(items) == 0 {
		return nil
	}

	type scored struct {
		item  core.Item
		score float64
	}

	var hits []scored
	for _, item := range items {
		if s := KeywordScore(query, item); s > 0 {
			hits = append(hits, scored{item: item, score: s})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) > k {
		hits = hits[:k]
	}

	out := make([]core.Item, len(hits))
	for i, h := range hits {
		out[i] = h.item
	}
	return out
}
