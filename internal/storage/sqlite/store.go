package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/badenlabs/badenbot/internal/core"
)

// Store reads the three knowledge tables and accepts price sheet upserts.
// It implements core.ItemSource.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Knowledge(ctx context.Context) ([]core.KnowledgeRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, topic, content, updated_at FROM ai_knowledge_base WHERE status = 'active'`)
	if err != nil {
		return nil, fmt.Errorf("query knowledge base: %w", err)
	}
	defer rows.Close()

	var out []core.KnowledgeRow
	for rows.Next() {
		var r core.KnowledgeRow
		if err := rows.Scan(&r.ID, &r.Topic, &r.Content, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan knowledge row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) POIs(ctx context.Context) ([]core.POIRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, category, zone, updated_at FROM poi WHERE status = 'active'`)
	if err != nil {
		return nil, fmt.Errorf("query poi: %w", err)
	}
	defer rows.Close()

	var out []core.POIRow
	for rows.Next() {
		var r core.POIRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.Category, &r.Zone, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan poi row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) OperatingHours(ctx context.Context) ([]core.HoursRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, poi_id, facility, hours, note, updated_at FROM poi_operating_hours WHERE status = 'active'`)
	if err != nil {
		return nil, fmt.Errorf("query operating hours: %w", err)
	}
	defer rows.Close()

	var out []core.HoursRow
	for rows.Next() {
		var r core.HoursRow
		var hours string
		if err := rows.Scan(&r.ID, &r.POIID, &r.Facility, &hours, &r.Note, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan operating hours row: %w", err)
		}
		r.Schedule = json.RawMessage(hours)
		out = append(out, r)
	}
	return out, rows.Err()
}

// UpsertKnowledge stores content under a topic, stamping updated_at so the
// priority scorer sees the entry as fresh.
func (s *Store) UpsertKnowledge(ctx context.Context, topic, content string) error {
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ai_knowledge_base (topic, content, status, updated_at)
		VALUES (?, ?, 'active', ?)
		ON CONFLICT (topic) DO UPDATE SET
			content = excluded.content,
			status = 'active',
			updated_at = excluded.updated_at`,
		topic, content, now)
	if err != nil {
		return fmt.Errorf("upsert knowledge: %w", err)
	}
	return nil
}
