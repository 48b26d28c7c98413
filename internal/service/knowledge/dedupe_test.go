package knowledge

import (
	"testing"
	"time"

	"github.com/badenlabs/badenbot/internal/core"
)

func TestGroupKey(t *testing.T) {
	tests := []struct {
		name string
		item core.Item
		want string
	}{
		{
			name: "pricing topics collapse",
			item: core.Item{Topic: "Giá vé cáp treo mới nhất"},
			want: "pricing",
		},
		{
			name: "english price topic",
			item: core.Item{Topic: "Ticket price update"},
			want: "pricing",
		},
		{
			name: "hours keyed per facility",
			item: core.Item{Topic: "Giờ hoạt động Chùa Bà", Facility: "Chùa Bà"},
			want: "hours_chùa_bà",
		},
		{
			name: "hours facility recovered from topic when field empty",
			item: core.Item{Topic: "Giờ hoạt động Ga Bà Đen"},
			want: "hours_ga_bà_đen",
		},
		{
			name: "cable car topic",
			item: core.Item{Topic: "Hệ thống cáp treo"},
			want: "cable_car",
		},
		{
			name: "other topics keyed verbatim lowercased",
			item: core.Item{Topic: "Lưu Ý An Toàn"},
			want: "lưu ý an toàn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GroupKey(tt.item); got != tt.want {
				t.Errorf("GroupKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeduplicateFreshWins(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	stale := strPtr(now.Add(-40 * 24 * time.Hour).Format(time.RFC3339))
	fresh := strPtr(now.Add(-30 * time.Minute).Format(time.RFC3339))

	a := core.Item{
		ID:        1,
		Topic:     "Giá vé cáp treo mới nhất",
		UpdatedAt: fresh,
		Source:    core.SourceGeneral,
	}
	a.Priority = ScorePriority(a.Source, a.Topic, a.UpdatedAt, now)

	b := core.Item{
		ID:        2,
		Topic:     "Bảng giá vé tham khảo",
		UpdatedAt: stale,
		Source:    core.SourceGeneral,
	}
	b.Priority = ScorePriority(b.Source, b.Topic, b.UpdatedAt, now)

	got := Deduplicate([]core.Item{b, a})
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	if got[0].ID != a.ID {
		t.Errorf("expected fresh item %d to win, got %d", a.ID, got[0].ID)
	}
}

func TestDeduplicateTieKeepsFirst(t *testing.T) {
	a := core.Item{ID: 1, Topic: "Giá vé hôm nay", Priority: 3.0}
	b := core.Item{ID: 2, Topic: "Giá vé tuần này", Priority: 3.0}

	got := Deduplicate([]core.Item{a, b})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("tie should keep first-seen item, got %+v", got)
	}
}

func TestDeduplicateDistinctFacilities(t *testing.T) {
	items := []core.Item{
		{ID: 1, Topic: "Giờ hoạt động Chùa Bà", Facility: "Chùa Bà", Priority: 2.0},
		{ID: 2, Topic: "Giờ hoạt động Ga Bà Đen", Facility: "Ga Bà Đen", Priority: 2.0},
	}

	got := Deduplicate(items)
	if len(got) != 2 {
		t.Fatalf("schedules of different facilities must not collapse, got %d items", len(got))
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	items := []core.Item{
		{ID: 1, Topic: "Giá vé", Priority: 5.0},
		{ID: 2, Topic: "Price list", Priority: 2.0},
		{ID: 3, Topic: "Hệ thống cáp treo", Priority: 2.5},
		{ID: 4, Topic: "Lưu ý an toàn", Priority: 1.0},
	}

	once := Deduplicate(items)
	twice := Deduplicate(once)

	if len(once) != len(twice) {
		t.Fatalf("length changed on second pass: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("position %d changed on second pass: %d vs %d", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestDeduplicateEmpty(t *testing.T) {
	if got := Deduplicate(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
