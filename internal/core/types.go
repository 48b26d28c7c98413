package core

import "time"

const (
	BotName       = "BadenBot"
	BotUserAgent  = "BadenBot/0.1"
	RepositoryURL = "https://github.com/badenlabs/badenbot"
	Version       = "0.1.0"
)

// SourceKind identifies which source table a knowledge item came from.
// The weight of a source in priority scoring depends on it.
type SourceKind string

const (
	SourceGeneral SourceKind = "ai_knowledge_base"
	SourcePOI     SourceKind = "poi"
	SourceHours   SourceKind = "poi_operating_hours"
)

// Item is the uniform knowledge unit every source is flattened into.
// Priority is computed once at ingestion and never mutated afterwards.
type Item struct {
	ID       int64
	Topic    string
	Content  string
	Facility string // set for operating-hours items; identifies the POI the schedule belongs to
	// UpdatedAt is the raw timestamp string as stored by the source.
	// nil means the source never recorded one.
	UpdatedAt *string
	Source    SourceKind
	Priority  float64
}

// Turn is one message/response exchange in a user's conversation window.
type Turn struct {
	UserID    string
	UserName  string
	Message   string
	Response  string
	Timestamp time.Time
}
