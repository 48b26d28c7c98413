package knowledge

import (
	"testing"

	"github.com/badenlabs/badenbot/internal/core"
)

func rankFixture() []core.Item {
	return []core.Item{
		{
			ID:       1,
			Topic:    "Giá vé cáp treo mới nhất",
			Content:  "Bảng giá vé cáp treo tuyến Vân Sơn và Chùa Hang.",
			Source:   core.SourceGeneral,
			Priority: 6.0,
		},
		{
			ID:       2,
			Topic:    "Giờ hoạt động Ga Bà Đen",
			Content:  "Lịch hoạt động của Ga Bà Đen:\n- Ngày thường: 05:30-22:00",
			Facility: "Ga Bà Đen",
			Source:   core.SourceHours,
			Priority: 5.3,
		},
		{
			ID:       3,
			Topic:    "Tuyến cáp treo Vân Sơn",
			Content:  "Tuyến cáp treo lên đỉnh núi. Loại: Phương tiện di chuyển. Vị trí: Khu vực chân núi",
			Source:   core.SourcePOI,
			Priority: 2.7,
		},
		{
			ID:       4,
			Topic:    "Chùa Bà Đen",
			Content:  "Ngôi chùa linh thiêng trên núi. Loại: Khu tâm linh. Vị trí: Khu vực chùa Bà (tâm linh)",
			Source:   core.SourcePOI,
			Priority: 2.2,
		},
		{
			ID:       5,
			Topic:    "Lưu ý an toàn",
			Content:  "Du khách nên mang giày thể thao khi leo núi.",
			Source:   core.SourceGeneral,
			Priority: 1.0,
		},
	}
}

func TestRankPriceQuery(t *testing.T) {
	items := rankFixture()

	got := Rank("giá vé cáp treo bao nhiêu", items, 8)
	if len(got) == 0 {
		t.Fatal("expected matches for a price query")
	}
	if got[0].ID != 1 {
		t.Errorf("expected the price entry first, got item %d", got[0].ID)
	}
	for _, item := range got {
		if item.ID == 5 {
			t.Errorf("safety note should not match a price query")
		}
	}
}

func TestRankHoursQuery(t *testing.T) {
	items := rankFixture()

	got := Rank("ga bà đen mấy giờ mở cửa", items, 8)
	if len(got) == 0 {
		t.Fatal("expected matches for an hours query")
	}
	if got[0].ID != 2 {
		t.Errorf("expected the schedule entry first, got item %d", got[0].ID)
	}
}

func TestRankComboDominates(t *testing.T) {
	items := []core.Item{
		{ID: 1, Topic: "Giá vé lẻ", Content: "Bảng giá vé từng tuyến.", Source: core.SourceGeneral, Priority: 3.0},
		{ID: 2, Topic: "Khuyến mãi Wow Vé", Content: "Combo WowPass all-in-one trọn gói.", Source: core.SourceGeneral, Priority: 3.0},
	}

	got := Rank("mua wowpass giá bao nhiêu", items, 2)
	if len(got) != 2 {
		t.Fatalf("expected both items to match, got %d", len(got))
	}
	if got[0].ID != 2 {
		t.Errorf("combo pass entry should dominate a wowpass query, got item %d first", got[0].ID)
	}
}

func TestRankCardinalityAndPositivity(t *testing.T) {
	items := rankFixture()

	for _, k := range []int{1, 2, 3} {
		got := Rank("cáp treo", items, k)
		if len(got) > k {
			t.Errorf("k=%d returned %d items", k, len(got))
		}
		for _, item := range got {
			if KeywordScore("cáp treo", item) <= 0 {
				t.Errorf("zero-score item %d returned", item.ID)
			}
		}
	}

	if got := Rank("cáp treo", items, 0); got != nil {
		t.Errorf("k=0 should return nil, got %v", got)
	}
	if got := Rank("wifi miễn phí xyz", items, 8); got != nil {
		t.Errorf("no-match query should return nil, got %v", got)
	}
}

func TestRankStableUnderInputOrder(t *testing.T) {
	items := rankFixture()

	a := Rank("giá vé cáp treo", items, 8)

	reversed := make([]core.Item, len(items))
	for i, item := range items {
		reversed[len(items)-1-i] = item
	}
	b := Rank("giá vé cáp treo", reversed, 8)

	if len(a) != len(b) {
		t.Fatalf("result size depends on input order: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			// Distinct scores must order identically regardless of input order.
			if KeywordScore("giá vé cáp treo", a[i]) != KeywordScore("giá vé cáp treo", b[i]) {
				t.Errorf("position %d differs: %d vs %d", i, a[i].ID, b[i].ID)
			}
		}
	}
}

func TestKeywordScorePriorityScaling(t *testing.T) {
	low := core.Item{Topic: "Giá vé", Content: "Bảng giá vé.", Source: core.SourceGeneral, Priority: 1.0}
	high := low
	high.Priority = 4.0

	ls := KeywordScore("giá vé", low)
	hs := KeywordScore("giá vé", high)
	if hs <= ls {
		t.Errorf("higher priority must scale the score up: %v vs %v", hs, ls)
	}
	if hs != ls*4.0 {
		t.Errorf("expected linear scaling, got %v and %v", ls, hs)
	}
}

func TestKeywordScoreZeroStaysZero(t *testing.T) {
	item := core.Item{Topic: "Lưu ý an toàn", Content: "Mang giày thể thao.", Priority: 10.0}
	if got := KeywordScore("wifi miễn phí", item); got != 0 {
		t.Errorf("unrelated item should score zero, got %v", got)
	}
}
