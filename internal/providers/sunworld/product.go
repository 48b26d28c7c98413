package sunworld

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Product categories.
const (
	CategoryEntrance = "entrance"
	CategoryCableCar = "cable_car"
	CategoryCombo    = "combo"
	CategoryDining   = "dining"
	CategoryPromo    = "promotion"
	CategoryOther    = "other"
)

var promotionKeywords = []string{"khuyến mãi", "deal", "combo", "all in one", "ưu đãi"}

type PromotionInfo struct {
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Channels []string `json:"channels"`
}

type Variant struct {
	ID            string
	Name          string
	Price         int
	OriginalPrice int
	Discount      int
	AgeType       string
	AreaType      string
	Inventory     int
	TimeSlot      string
	IsLongTerm    bool
}

type Product struct {
	ID              string
	Name            string
	Category        string
	SubCategory     string
	OriginalPrice   int
	SalePrice       int
	SalePercent     int
	IsPromotion     bool
	HasDiscount     bool
	PromotionInfo   []PromotionInfo
	BookedCount     int
	HasWeekdayPrice bool
	HasWeekendPrice bool
	Variants        []Variant
}

// rawProduct mirrors the booking API's listing entry. Prices arrive as
// numbers or numeric strings, so everything monetary decodes through
// json.RawMessage and the coercion helpers.
type rawProduct struct {
	ID            json.Number     `json:"id"`
	Name          string          `json:"name"`
	DisplayPrice  json.RawMessage `json:"displayPrice"`
	OriginalPrice json.RawMessage `json:"originalPrice"`
	SalePrice     json.RawMessage `json:"salePrice"`
	SalePercent   json.RawMessage `json:"salePercent"`
	BookedCount   int             `json:"bookedCount"`
	Promotions    []PromotionInfo `json:"promotionInfoResponse"`
	Products      []rawVariant    `json:"products"`
}

type rawVariant struct {
	ID            json.Number     `json:"id"`
	Name          string          `json:"name"`
	Price         json.RawMessage `json:"price"`
	OriginalPrice json.RawMessage `json:"originalPrice"`
	IsInStock     bool            `json:"isInStock"`
	Inventory     int             `json:"inventory"`
	UsedArea2     string          `json:"usedArea2"`
	IsLongTerm    bool            `json:"isLongTerm"`
	AgeTypeLabel  []struct {
		Name string `json:"name"`
	} `json:"ageTypeLabel"`
	AreaTypeLabel []struct {
		Name string `json:"name"`
	} `json:"areaTypeLabel"`
}

// ProcessProducts decodes, categorizes and flattens the raw listing entries.
// Entries that fail to decode are skipped rather than failing the batch.
func ProcessProducts(raws []json.RawMessage) []Product {
	var out []Product
	for _, raw := range raws {
		var rp rawProduct
		if err := json.Unmarshal(raw, &rp); err != nil {
			continue
		}
		out = append(out, processOne(rp))
	}
	return out
}

func processOne(rp rawProduct) Product {
	nameLower := strings.ToLower(rp.Name)

	category, subCategory := categorize(nameLower)

	originalPrice := coerceInt(rp.DisplayPrice)
	if originalPrice == 0 {
		originalPrice = coerceInt(rp.OriginalPrice)
	}
	salePrice := coerceInt(rp.SalePrice)
	salePercent := coerceFloat(rp.SalePercent)

	hasDiscount := salePercent > 0 || (salePrice > 0 && originalPrice > salePrice)
	hasPromoKeywords := containsAnyKeyword(nameLower, promotionKeywords)
	isPromotion := len(rp.Promotions) > 0

	if (isPromotion || hasDiscount || hasPromoKeywords) && category == CategoryOther {
		category = CategoryPromo
	}

	actualDiscount := int(math.Round(salePercent))
	if originalPrice > salePrice && salePrice > 0 {
		actualDiscount = percentOff(originalPrice, salePrice)
	}

	var hasWeekday, hasWeekend bool
	for _, v := range rp.Products {
		n := strings.ToLower(v.Name)
		if strings.Contains(n, "đầu tuần") {
			hasWeekday = true
		}
		if strings.Contains(n, "cuối tuần") {
			hasWeekend = true
		}
	}

	return Product{
		ID:              rp.ID.String(),
		Name:            rp.Name,
		Category:        category,
		SubCategory:     subCategory,
		OriginalPrice:   originalPrice,
		SalePrice:       salePrice,
		SalePercent:     actualDiscount,
		IsPromotion:     isPromotion,
		HasDiscount:     actualDiscount > 0,
		PromotionInfo:   rp.Promotions,
		BookedCount:     rp.BookedCount,
		HasWeekdayPrice: hasWeekday,
		HasWeekendPrice: hasWeekend,
		Variants:        processVariants(rp.Products),
	}
}

func categorize(nameLower string) (category, subCategory string) {
	switch {
	case strings.Contains(nameLower, "vào cổng") || strings.Contains(nameLower, "vé vào"):
		return CategoryEntrance, ""
	case strings.Contains(nameLower, "cáp treo"):
		switch {
		case strings.Contains(nameLower, "chùa hang"):
			subCategory = "chua_hang"
		case strings.Contains(nameLower, "đỉnh") || strings.Contains(nameLower, "vân sơn"):
			subCategory = "dinh_van_son"
		case strings.Contains(nameLower, "tâm an"):
			subCategory = "tam_an"
		}
		return CategoryCableCar, subCategory
	case strings.Contains(nameLower, "combo") || strings.Contains(nameLower, "all in one"):
		if strings.Contains(nameLower, "buffet") {
			subCategory = "with_buffet"
		}
		if strings.Contains(nameLower, "hành trình") {
			subCategory = "journey"
		}
		return CategoryCombo, subCategory
	case strings.Contains(nameLower, "buffet"):
		return CategoryDining, ""
	}
	return CategoryOther, ""
}

func processVariants(raws []rawVariant) []Variant {
	var variants []Variant
	seen := make(map[string]bool)

	for _, rv := range raws {
		price := coerceInt(rv.Price)
		if !rv.IsInStock || price <= 0 {
			continue
		}

		original := coerceInt(rv.OriginalPrice)
		discount := 0
		if original > 0 {
			discount = percentOff(original, price)
		}

		var ageType, areaType string
		if len(rv.AgeTypeLabel) > 0 {
			ageType = rv.AgeTypeLabel[0].Name
		}
		if len(rv.AreaTypeLabel) > 0 {
			areaType = rv.AreaTypeLabel[0].Name
		}

		key := fmt.Sprintf("%s_%s_%d", rv.Name, ageType, price)
		if seen[key] {
			continue
		}
		seen[key] = true

		variants = append(variants, Variant{
			ID:            rv.ID.String(),
			Name:          rv.Name,
			Price:         price,
			OriginalPrice: original,
			Discount:      discount,
			AgeType:       ageType,
			AreaType:      areaType,
			Inventory:     rv.Inventory,
			TimeSlot:      rv.UsedArea2,
			IsLongTerm:    rv.IsLongTerm,
		})
	}
	return variants
}

func percentOff(original, price int) int {
	if original <= 0 {
		return 0
	}
	return int(math.Round(float64(original-price) / float64(original) * 100))
}

// coerceInt accepts numbers, numeric strings, and null.
func coerceInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if f, err := n.Float64(); err == nil {
			return int(f)
		}
		return 0
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		sn := json.Number(strings.TrimSpace(s))
		if f, err := sn.Float64(); err == nil {
			return int(f)
		}
	}
	return 0
}

func coerceFloat(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if f, err := n.Float64(); err == nil {
			return f
		}
		return 0
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		sn := json.Number(strings.TrimSpace(s))
		if f, err := sn.Float64(); err == nil {
			return f
		}
	}
	return 0
}

func containsAnyKeyword(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
