package knowledge

import (
	"strings"

	"github.com/badenlabs/badenbot/internal/core"
)

// GroupKey normalizes an item's topic into the key duplicates collapse under.
// Pricing and cable-car topics share one key each; schedules stay distinct
// per facility so one POI's hours never shadow another's.
func GroupKey(item core.Item) string {
	topic := strings.ToLower(item.Topic)

	switch {
	case containsAny(topic, priceKeyVocab):
		return "pricing"
	case containsAny(topic, hoursKeyVocab):
		return "hours_" + strings.ReplaceAll(strings.ToLower(facilityOf(item)), " ", "_")
	case containsAny(topic, cableKeyVocab):
		return "cable_car"
	}
	return topic
}

// facilityOf prefers the first-class facility field; recovering the name from
// the topic label is only a fallback for items that predate the field.
func facilityOf(item core.Item) string {
	if item.Facility != "" {
		return item.Facility
	}
	return strings.TrimSpace(strings.TrimPrefix(item.Topic, "Giờ hoạt động"))
}

// Deduplicate keeps the highest-priority item per grouping key. Ties keep the
// first-seen item, and surviving items appear in first-seen group order, so
// the operation is stable and idempotent.
func Deduplicate(items []core.Item) []core.Item {
	if len(items) == 0 {
		return nil
	}

	var order []string
	best := make(map[string]core.Item, len(items))

	for _, item := range items {
		key := GroupKey(item)
		cur, seen := best[key]
		if !seen {
			order = append(order, key)
			best[key] = item
			continue
		}
		if item.Priority > cur.Priority {
			best[key] = item
		}
	}

	out := make([]core.Item, 0, len(order))
	for _, key := range order {
		out = append(out, best[key])
	}
	return out
}
