package core

import (
	"context"
	"encoding/json"
)

// KnowledgeRow is a raw ai_knowledge_base record before flattening.
type KnowledgeRow struct {
	ID        int64
	Topic     string
	Content   string
	UpdatedAt *string
}

// POIRow is a raw point-of-interest record. Category and Zone are the
// source's enum codes; the engine turns them into readable text.
type POIRow struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Zone        string
	UpdatedAt   *string
}

// HoursRow is a raw operating-hours record, already joined against the POI
// name. Schedule is either a JSON object of day->span or a JSON array of
// such objects, exactly as the source stores it.
type HoursRow struct {
	ID        int64
	POIID     int64
	Facility  string
	Schedule  json.RawMessage
	Note      string
	UpdatedAt *string
}

// ItemSource supplies raw record batches, one method per source table.
// Each method fails independently so partial outages stay observable.
type ItemSource interface {
	Knowledge(ctx context.Context) ([]KnowledgeRow, error)
	POIs(ctx context.Context) ([]POIRow, error)
	OperatingHours(ctx context.Context) ([]HoursRow, error)
}
