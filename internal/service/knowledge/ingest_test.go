package knowledge

import (
	"strings"
	"testing"
	"time"

	"github.com/badenlabs/badenbot/internal/core"
)

func TestItemFromPOI(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	row := core.POIRow{
		ID:          7,
		Name:        "Tuyến cáp treo Vân Sơn",
		Description: "Tuyến cáp treo lên đỉnh núi",
		Category:    "transport",
		Zone:        "chan_nui",
	}

	item := itemFromPOI(row, now)
	if item.Source != core.SourcePOI {
		t.Errorf("source = %s", item.Source)
	}
	want := "Tuyến cáp treo lên đỉnh núi. Loại: Phương tiện di chuyển. Vị trí: Khu vực chân núi"
	if item.Content != want {
		t.Errorf("content = %q, want %q", item.Content, want)
	}
	if item.Priority <= 0 {
		t.Errorf("priority not computed: %v", item.Priority)
	}
}

func TestItemFromPOIUnknownCodes(t *testing.T) {
	now := time.Now()
	row := core.POIRow{ID: 8, Name: "Khu mới", Description: "Đang xây dựng", Category: "future", Zone: "khu_moi"}

	item := itemFromPOI(row, now)
	if !strings.Contains(item.Content, "Loại: future") || !strings.Contains(item.Content, "Vị trí: khu_moi") {
		t.Errorf("unknown codes should pass through verbatim, got %q", item.Content)
	}
}

func TestItemFromHours(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	row := core.HoursRow{
		ID:       3,
		POIID:    2,
		Facility: "Ga Bà Đen",
		Schedule: []byte(`{"mon":"05:30-21:00","sat":"05:00-22:00","sun":"05:00-22:00","default":"05:30-21:00"}`),
		Note:     "Tạm dừng khi mưa dông",
	}

	item := itemFromHours(row, now)
	if item.Topic != "Giờ hoạt động Ga Bà Đen" {
		t.Errorf("topic = %q", item.Topic)
	}
	if item.Facility != "Ga Bà Đen" {
		t.Errorf("facility = %q", item.Facility)
	}

	want := strings.Join([]string{
		"Lịch hoạt động của Ga Bà Đen:",
		"- Thứ 2: 05:30-21:00",
		"- Thứ 7: 05:00-22:00",
		"- Chủ nhật: 05:00-22:00",
		"- Ngày thường: 05:30-21:00",
		"Ghi chú: Tạm dừng khi mưa dông",
	}, "\n")
	if item.Content != want {
		t.Errorf("content = %q, want %q", item.Content, want)
	}
}

func TestScheduleLinesListForm(t *testing.T) {
	raw := []byte(`[{"mon":"08:00-17:00"},{"sun":"08:00-18:00"}]`)

	lines := scheduleLines(raw)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "- Thứ 2: 08:00-17:00" || lines[1] != "- Chủ nhật: 08:00-18:00" {
		t.Errorf("unexpected lines %v", lines)
	}
}

func TestScheduleLinesMalformed(t *testing.T) {
	if got := scheduleLines([]byte(`"just a string"`)); got != nil {
		t.Errorf("malformed schedule should render no lines, got %v", got)
	}
	if got := scheduleLines(nil); got != nil {
		t.Errorf("empty schedule should render no lines, got %v", got)
	}
}
