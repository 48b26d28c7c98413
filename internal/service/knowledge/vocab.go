package knowledge

import "strings"

// Vocabulary tables backing the substring heuristics. Keeping them as data
// makes the rule tables the unit of test coverage instead of scattered
// inline conditionals.

// Topic vocabularies used by the priority scorer (first match wins).
var (
	priceTopicVocab = []string{"giá vé", "price", "ticket", "khuyến mãi"}
	hoursTopicVocab = []string{"giờ hoạt động", "operating", "hours"}
	cableTopicVocab = []string{"cáp treo", "cable", "transport"}
)

// Grouping-key vocabularies used by the deduplicator.
var (
	priceKeyVocab = []string{"giá vé", "price", "ticket"}
	hoursKeyVocab = []string{"giờ hoạt động", "operating"}
	cableKeyVocab = []string{"cáp treo", "cable"}
)

// Query-intent and text vocabularies used by the ranker.
var (
	// PriceQueryVocab is exported: the assistant reuses it to decide when a
	// query should trigger an external price refresh.
	PriceQueryVocab = []string{"giá vé", "giá", "vé", "ticket", "price", "cost", "bao nhiêu"}
	priceTextVocab  = []string{"giá vé", "bảng giá", "ticket"}

	comboQueryVocab = []string{"wowpass", "wow pass", "wow vé"}
	comboTextVocab  = []string{"wow vé", "wowpass", "wow pass", "combo", "all-in-one"}

	timeQueryVocab  = []string{"giờ", "mở", "đóng", "hoạt động", "time"}
	cableQueryVocab = []string{"cáp treo", "ga", "cable"}

	spiritualQueryVocab = []string{"chùa", "phật", "tâm linh", "cầu"}
	spiritualTextVocab  = []string{"khu tâm linh", "religion"}

	diningQueryVocab = []string{"ăn", "buffet", "nhà hàng", "food"}
	diningTextVocab  = []string{"ăn uống", "food"}

	scenicQueryVocab = []string{"cảnh", "view", "đỉnh", "ngắm"}
	scenicTextVocab  = []string{"điểm ngắm cảnh", "viewpoint"}

	transportTextVocab  = []string{"phương tiện di chuyển", "transport"}
	attractionTextVocab = []string{"điểm tham quan"}
)

func containsAny(s string, vocab []string) bool {
	for _, w := range vocab {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
