package knowledge

import (
	"testing"
	"time"

	"github.com/badenlabs/badenbot/internal/core"
)

func strPtr(s string) *string { return &s }

func TestScorePriority(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		kind      core.SourceKind
		topic     string
		updatedAt *string
		want      float64
	}{
		{
			name:      "fresh price entry gets topical and freshness bonus",
			kind:      core.SourceGeneral,
			topic:     "Giá vé cáp treo mới nhất",
			updatedAt: strPtr(now.Add(-30 * time.Minute).Format(time.RFC3339)),
			want:      1.0 + 2.0 + 3.0,
		},
		{
			name:      "day-old schedule",
			kind:      core.SourceHours,
			topic:     "Giờ hoạt động Chùa Bà",
			updatedAt: strPtr(now.Add(-25 * time.Hour).Format(time.RFC3339)),
			want:      1.5 + 1.8 + 1.0,
		},
		{
			name:      "poi without timestamp",
			kind:      core.SourcePOI,
			topic:     "Tượng Phật Bà Tây Bổ Đà Sơn",
			updatedAt: nil,
			want:      1.2 - 1.0,
		},
		{
			name:      "unparsable timestamp",
			kind:      core.SourceGeneral,
			topic:     "Lưu ý an toàn",
			updatedAt: strPtr("hôm qua"),
			want:      1.0 - 0.5,
		},
		{
			name:      "floor applies for general entry with no timestamp",
			kind:      core.SourceGeneral,
			topic:     "Lưu ý an toàn",
			updatedAt: nil,
			want:      0.1,
		},
		{
			name:      "cable topic bonus",
			kind:      core.SourceGeneral,
			topic:     "Hệ thống cáp treo",
			updatedAt: strPtr(now.Add(-40 * 24 * time.Hour).Format(time.RFC3339)),
			want:      1.0 + 1.5 + 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScorePriority(tt.kind, tt.topic, tt.updatedAt, now)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("ScorePriority() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScorePriorityDeterministic(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	ts := strPtr("2025-03-09T08:00:00Z")

	first := ScorePriority(core.SourceHours, "Giờ hoạt động Ga Bà Đen", ts, now)
	for i := 0; i < 5; i++ {
		if got := ScorePriority(core.SourceHours, "Giờ hoạt động Ga Bà Đen", ts, now); got != first {
			t.Fatalf("score changed between calls: %v vs %v", got, first)
		}
	}
}

func TestScorePriorityFreshnessMonotonic(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	ages := []time.Duration{
		30 * time.Minute,
		12 * time.Hour,
		3 * 24 * time.Hour,
		20 * 24 * time.Hour,
		60 * 24 * time.Hour,
	}

	prev := -1.0
	for i := len(ages) - 1; i >= 0; i-- {
		ts := strPtr(now.Add(-ages[i]).Format(time.RFC3339))
		got := ScorePriority(core.SourceGeneral, "Thông tin chung", ts, now)
		if got < prev {
			t.Fatalf("fresher item scored lower: age %v scored %v, staler scored %v", ages[i], got, prev)
		}
		prev = got
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"2025-03-09T08:00:00Z", true},
		{"2025-03-09T08:00:00+07:00", true},
		{"2025-03-09T08:00:00.123456", true},
		{"2025-03-09 08:00:00", true},
		{"2025-03-09", true},
		{"", false},
		{"hôm qua", false},
		{"09/03/2025", false},
	}

	for _, tt := range tests {
		if _, ok := ParseTimestamp(tt.in); ok != tt.ok {
			t.Errorf("ParseTimestamp(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}
