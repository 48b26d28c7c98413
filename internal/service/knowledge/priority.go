package knowledge

import (
	"strings"
	"time"

	"github.com/badenlabs/badenbot/internal/core"
	"github.com/badenlabs/badenbot/pkg/vntime"
)

// Priority scoring weights. Schedules outrank POIs which outrank general
// entries; price topics carry the largest topical bonus.
const (
	weightGeneral = 1.0
	weightPOI     = 1.2
	weightHours   = 1.5

	bonusPriceTopic = 2.0
	bonusHoursTopic = 1.8
	bonusCableTopic = 1.5

	penaltyMissingTimestamp    = 1.0
	penaltyUnparsableTimestamp = 0.5

	// An item must never become mathematically unrankable, so the score is
	// floored above zero.
	priorityFloor = 0.1
)

// ScorePriority computes an item's trust/freshness weight. It is a pure
// function of its four inputs and is recomputed on every ingestion cycle.
func ScorePriority(kind core.SourceKind, topic string, updatedAt *string, now time.Time) float64 {
	score := baseWeight(kind) + topicBonus(topic)

	if updatedAt == nil || *updatedAt == "" {
		// Never timestamped: treated as indefinitely stale.
		score -= penaltyMissingTimestamp
	} else if t, ok := ParseTimestamp(*updatedAt); ok {
		score += freshnessBonus(now.Sub(t).Hours())
	} else {
		// The source still passed a well-shaped record, so the penalty is
		// softer than for a missing timestamp.
		score -= penaltyUnparsableTimestamp
	}

	if score < priorityFloor {
		score = priorityFloor
	}
	return score
}

func baseWeight(kind core.SourceKind) float64 {
	switch kind {
	case core.SourcePOI:
		return weightPOI
	case core.SourceHours:
		return weightHours
	default:
		return weightGeneral
	}
}

func topicBonus(topic string) float64 {
	t := strings.ToLower(topic)
	switch {
	case containsAny(t, priceTopicVocab):
		return bonusPriceTopic
	case containsAny(t, hoursTopicVocab):
		return bonusHoursTopic
	case containsAny(t, cableTopicVocab):
		return bonusCableTopic
	}
	return 0
}

func freshnessBonus(ageHours float64) float64 {
	switch {
	case ageHours < 1:
		return 3.0
	case ageHours < 24:
		return 2.0
	case ageHours < 168: // one week
		return 1.0
	case ageHours < 720: // thirty days
		return 0.5
	}
	return 0
}

// timestampLayouts covers the shapes the sources actually emit: RFC3339 with
// or without offset, and naive ISO-8601 which is assumed site-local.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp parses a source updated_at string.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, vntime.Location()); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
