package knowledge

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/badenlabs/badenbot/internal/core"
)

// Readable labels for the POI enum codes. Embedding them into the content
// lets the ranker match category intent as plain text.
var categoryNames = map[string]string{
	"transport":  "Phương tiện di chuyển",
	"attraction": "Điểm tham quan",
	"religion":   "Khu tâm linh",
	"viewpoint":  "Điểm ngắm cảnh",
	"food":       "Ăn uống",
	"amenities":  "Tiện ích",
	"parking":    "Bãi đỗ xe",
}

var zoneNames = map[string]string{
	"chan_nui": "Khu vực chân núi",
	"chua_ba":  "Khu vực chùa Bà (tâm linh)",
	"dinh_nui": "Khu vực đỉnh núi",
}

var scheduleDayNames = map[string]string{
	"mon":     "Thứ 2",
	"tue":     "Thứ 3",
	"wed":     "Thứ 4",
	"thu":     "Thứ 5",
	"fri":     "Thứ 6",
	"sat":     "Thứ 7",
	"sun":     "Chủ nhật",
	"default": "Ngày thường",
}

var scheduleDayOrder = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun", "default"}

func itemFromKnowledge(row core.KnowledgeRow, now time.Time) core.Item {
	return core.Item{
		ID:        row.ID,
		Topic:     row.Topic,
		Content:   row.Content,
		UpdatedAt: row.UpdatedAt,
		Source:    core.SourceGeneral,
		Priority:  ScorePriority(core.SourceGeneral, row.Topic, row.UpdatedAt, now),
	}
}

func itemFromPOI(row core.POIRow, now time.Time) core.Item {
	name := row.Name
	if name == "" {
		name = "Điểm tham quan"
	}

	var parts []string
	if row.Description != "" {
		parts = append(parts, row.Description)
	}
	if row.Category != "" {
		label, ok := categoryNames[row.Category]
		if !ok {
			label = row.Category
		}
		parts = append(parts, "Loại: "+label)
	}
	if row.Zone != "" {
		label, ok := zoneNames[row.Zone]
		if !ok {
			label = row.Zone
		}
		parts = append(parts, "Vị trí: "+label)
	}

	return core.Item{
		ID:        row.ID,
		Topic:     name,
		Content:   strings.Join(parts, ". "),
		UpdatedAt: row.UpdatedAt,
		Source:    core.SourcePOI,
		Priority:  ScorePriority(core.SourcePOI, name, row.UpdatedAt, now),
	}
}

func itemFromHours(row core.HoursRow, now time.Time) core.Item {
	topic := "Giờ hoạt động " + row.Facility

	lines := []string{"Lịch hoạt động của " + row.Facility + ":"}
	lines = append(lines, scheduleLines(row.Schedule)...)
	if row.Note != "" {
		lines = append(lines, "Ghi chú: "+row.Note)
	}

	return core.Item{
		ID:        row.ID,
		Topic:     topic,
		Content:   strings.Join(lines, "\n"),
		Facility:  row.Facility,
		UpdatedAt: row.UpdatedAt,
		Source:    core.SourceHours,
		Priority:  ScorePriority(core.SourceHours, topic, row.UpdatedAt, now),
	}
}

// scheduleLines renders a schedule payload, which is either one day->span
// object or a list of them. Unknown day codes pass through verbatim.
func scheduleLines(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var byDay map[string]string
	if err := json.Unmarshal(raw, &byDay); err == nil {
		return daysToLines(byDay)
	}

	var list []map[string]string
	if err := json.Unmarshal(raw, &list); err == nil {
		var lines []string
		for _, m := range list {
			lines = append(lines, daysToLines(m)...)
		}
		return lines
	}

	return nil
}

func daysToLines(byDay map[string]string) []string {
	var lines []string

	rendered := make(map[string]bool, len(byDay))
	for _, day := range scheduleDayOrder {
		if span, ok := byDay[day]; ok {
			lines = append(lines, "- "+scheduleDayNames[day]+": "+span)
			rendered[day] = true
		}
	}

	// Anything outside the canonical week, in deterministic order.
	var rest []string
	for day := range byDay {
		if !rendered[day] {
			rest = append(rest, day)
		}
	}
	sort.Strings(rest)
	for _, day := range rest {
		lines = append(lines, "- "+day+": "+byDay[day])
	}

	return lines
}
