package sunworld

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		subCategory string
	}{
		{"Vé vào cổng Sun World Ba Den Mountain", CategoryEntrance, ""},
		{"Vé cáp treo tuyến Chùa Hang", CategoryCableCar, "chua_hang"},
		{"Vé cáp treo lên đỉnh Vân Sơn", CategoryCableCar, "dinh_van_son"},
		{"Vé cáp treo Tâm An", CategoryCableCar, "tam_an"},
		{"Combo cáp treo + buffet trưa", CategoryCableCar, ""},
		{"Combo Hành Trình Tâm Linh", CategoryCombo, "journey"},
		{"All in One kèm buffet", CategoryCombo, "with_buffet"},
		{"Buffet trưa nhà hàng Vân Sơn", CategoryDining, ""},
		{"Dịch vụ chụp ảnh", CategoryOther, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, sub := categorize(strings.ToLower(tt.name))
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.subCategory, sub)
		})
	}
}

func TestProcessProducts(t *testing.T) {
	raw := json.RawMessage(`{
		"id": 101,
		"name": "Vé cáp treo lên đỉnh Vân Sơn",
		"displayPrice": "400000",
		"salePrice": 350000,
		"salePercent": null,
		"bookedCount": 1200,
		"products": [
			{
				"id": 1,
				"name": "Vé người lớn đầu tuần",
				"price": 350000,
				"originalPrice": 400000,
				"isInStock": true,
				"ageTypeLabel": [{"name": "Người lớn"}]
			},
			{
				"id": 2,
				"name": "Vé người lớn cuối tuần",
				"price": 400000,
				"isInStock": true,
				"ageTypeLabel": [{"name": "Người lớn"}]
			},
			{
				"id": 3,
				"name": "Vé trẻ em hết hàng",
				"price": 200000,
				"isInStock": false,
				"ageTypeLabel": [{"name": "Trẻ em"}]
			}
		]
	}`)

	products := ProcessProducts([]json.RawMessage{raw})
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}

	p := products[0]
	assert.Equal(t, "101", p.ID)
	assert.Equal(t, CategoryCableCar, p.Category)
	assert.Equal(t, "dinh_van_son", p.SubCategory)
	assert.Equal(t, 400000, p.OriginalPrice)
	assert.Equal(t, 350000, p.SalePrice)
	assert.True(t, p.HasDiscount)
	assert.Equal(t, 13, p.SalePercent) // (400000-350000)/400000 rounded
	assert.True(t, p.HasWeekdayPrice)
	assert.True(t, p.HasWeekendPrice)

	// The out-of-stock variant is dropped.
	assert.Len(t, p.Variants, 2)
	assert.Equal(t, 13, p.Variants[0].Discount)
}

func TestProcessProductsVariantDedup(t *testing.T) {
	raw := json.RawMessage(`{
		"id": 7,
		"name": "Vé vào cổng",
		"products": [
			{"id": 1, "name": "Vé", "price": 100000, "isInStock": true, "ageTypeLabel": [{"name": "Người lớn"}]},
			{"id": 2, "name": "Vé", "price": 100000, "isInStock": true, "ageTypeLabel": [{"name": "Người lớn"}]}
		]
	}`)

	products := ProcessProducts([]json.RawMessage{raw})
	assert.Len(t, products[0].Variants, 1)
}

func TestProcessProductsPromotionFallback(t *testing.T) {
	raw := json.RawMessage(`{
		"id": 8,
		"name": "Ưu đãi mùa hè",
		"products": []
	}`)

	products := ProcessProducts([]json.RawMessage{raw})
	assert.Equal(t, CategoryPromo, products[0].Category)
}

func TestProcessProductsMalformedPrices(t *testing.T) {
	raw := json.RawMessage(`{
		"id": 9,
		"name": "Vé vào cổng",
		"displayPrice": "n/a",
		"salePrice": null,
		"products": [
			{"id": 1, "name": "Vé", "price": "abc", "isInStock": true}
		]
	}`)

	products := ProcessProducts([]json.RawMessage{raw})
	p := products[0]
	assert.Equal(t, 0, p.OriginalPrice)
	assert.Empty(t, p.Variants)
}

func TestDedupeByID(t *testing.T) {
	raws := []json.RawMessage{
		json.RawMessage(`{"id": 1, "name": "dated"}`),
		json.RawMessage(`{"id": 2, "name": "b"}`),
		json.RawMessage(`{"id": 1, "name": "flexible"}`),
	}

	unique := dedupeByID(raws)
	assert.Len(t, unique, 2)
	assert.JSONEq(t, `{"id": 1, "name": "flexible"}`, string(unique[0]))
}
