package sunworld

import (
	"fmt"
	"strings"
	"time"

	"github.com/badenlabs/badenbot/pkg/vntime"
)

// RenderMarkdown builds the Vietnamese price sheet stored in the knowledge
// base and served verbatim to visitors asking about tickets.
func RenderMarkdown(products []Product, land, park string, now time.Time) string {
	now = now.In(vntime.Location())
	stamp := now.Format("02/01/2006 lúc 15:04")

	var b strings.Builder
	b.WriteString("# 🎫 Bảng Giá Vé Sunworld Núi Bà Đen\n\n")
	fmt.Fprintf(&b, "**Cập nhật:** %s\n\n", stamp)

	if len(products) == 0 {
		b.WriteString("⚠️ Hiện chưa có thông tin giá vé.\n\n")
		return b.String()
	}

	var promos, regular []Product
	for _, p := range products {
		if p.IsPromotion || p.HasDiscount {
			promos = append(promos, p)
		} else {
			regular = append(regular, p)
		}
	}

	if len(promos) > 0 {
		b.WriteString("## 🔥 KHUYẾN MÃI HOT\n\n")
		for _, p := range promos {
			writePromotion(&b, p)
		}
	}

	b.WriteString("---\n\n")

	writeCategory(&b, regular, CategoryEntrance, "## 🚪 Vé Vào Cổng\n\n")
	writeCableCar(&b, regular)
	writeCategory(&b, regular, CategoryCombo, "## 🎁 Gói Combo\n\n")

	writeFooter(&b, land, park, now, stamp)
	return b.String()
}

func writePromotion(b *strings.Builder, p Product) {
	fmt.Fprintf(b, "### %s\n\n", p.Name)

	for _, promo := range p.PromotionInfo {
		fmt.Fprintf(b, "> 🎉 **%s**\n", promo.Content)
	}

	if p.HasDiscount && p.OriginalPrice > 0 && p.SalePrice > 0 {
		fmt.Fprintf(b, "> 💰 **Giảm %d%%** - Từ ~~%sđ~~ còn **%sđ**\n",
			p.SalePercent, FormatPrice(p.OriginalPrice), FormatPrice(p.SalePrice))
	}

	if len(p.Variants) > 0 {
		var discounted bool
		for _, v := range p.Variants {
			if v.Discount > 0 {
				discounted = true
				break
			}
		}
		if discounted {
			b.WriteString("\n| Loại vé | Giá gốc | Giá khuyến mãi | Tiết kiệm |\n")
			b.WriteString("|---------|---------|----------------|----------|\n")
			for _, v := range p.Variants {
				if v.Discount > 0 {
					fmt.Fprintf(b, "| %s | ~~%sđ~~ | **%sđ** | %d%% |\n",
						variantLabel(v), FormatPrice(v.OriginalPrice), FormatPrice(v.Price), v.Discount)
				} else {
					fmt.Fprintf(b, "| %s | - | **%sđ** | - |\n", variantLabel(v), FormatPrice(v.Price))
				}
			}
		} else {
			b.WriteString("\n| Loại vé | Giá |\n|---------|-----|\n")
			for _, v := range p.Variants {
				fmt.Fprintf(b, "| %s | **%sđ** |\n", variantLabel(v), FormatPrice(v.Price))
			}
		}
	}

	if p.BookedCount > 0 {
		fmt.Fprintf(b, "\n> 📊 Đã có **%s** lượt đặt\n", FormatPrice(p.BookedCount))
	}
	b.WriteString("\n---\n\n")
}

func writeCategory(b *strings.Builder, products []Product, category, header string) {
	var group []Product
	for _, p := range products {
		if p.Category == category {
			group = append(group, p)
		}
	}
	if len(group) == 0 {
		return
	}

	b.WriteString(header)
	for _, p := range group {
		fmt.Fprintf(b, "### %s\n\n", p.Name)
		if len(p.Variants) > 0 {
			b.WriteString("| Loại vé | Giá |\n|---------|-----|\n")
			for _, v := range p.Variants {
				fmt.Fprintf(b, "| %s | **%sđ** |\n", variantLabel(v), FormatPrice(v.Price))
			}
		}
		if p.BookedCount > 0 {
			fmt.Fprintf(b, "\n> 📊 Đã có **%s** lượt đặt\n", FormatPrice(p.BookedCount))
		}
		b.WriteString("\n")
	}
}

// writeCableCar renders cable-car tickets, splitting weekday/weekend columns
// when a product prices the two differently.
func writeCableCar(b *strings.Builder, products []Product) {
	var group []Product
	for _, p := range products {
		if p.Category == CategoryCableCar {
			group = append(group, p)
		}
	}
	if len(group) == 0 {
		return
	}

	b.WriteString("## 🚠 Vé Cáp Treo\n\n")
	for _, p := range group {
		fmt.Fprintf(b, "### %s\n\n", p.Name)

		if p.HasWeekdayPrice || p.HasWeekendPrice {
			b.WriteString("| Loại vé | Đầu tuần | Cuối tuần |\n")
			b.WriteString("|---------|----------|----------|\n")
			for _, ageType := range ageTypes(p.Variants) {
				weekday := findVariant(p.Variants, ageType, "đầu tuần")
				weekend := findVariant(p.Variants, ageType, "cuối tuần")
				fmt.Fprintf(b, "| %s | %s | %s |\n", ageType, priceCell(weekday), priceCell(weekend))
			}
		} else if len(p.Variants) > 0 {
			b.WriteString("| Loại vé | Giá |\n|---------|-----|\n")
			for _, v := range p.Variants {
				fmt.Fprintf(b, "| %s | **%sđ** |\n", variantLabel(v), FormatPrice(v.Price))
			}
		}

		if p.BookedCount > 0 {
			fmt.Fprintf(b, "> 📊 Đã có **%s** lượt đặt\n", FormatPrice(p.BookedCount))
		}
		b.WriteString("\n")
	}
}

func writeFooter(b *strings.Builder, land, park string, now time.Time, stamp string) {
	b.WriteString("---\n\n")
	b.WriteString("## 📋 Thông Tin Thêm\n\n")
	fmt.Fprintf(b, "- 📅 **Ngày áp dụng:** %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(b, "- 🌐 **Đặt vé online:** [booking.sunworld.vn](https://booking.sunworld.vn/vi/catalog?land=%s&park=%s)\n", land, park)
	b.WriteString("- 📞 **Hotline:** 0276.353.6666 / 0327.222.227\n")
	b.WriteString("- ⏰ **Giờ hoạt động:** 7:00 - 18:00 (hàng ngày)\n")
	b.WriteString("- 📍 **Địa điểm:** Núi Bà Đen, Tây Ninh\n\n")
	b.WriteString("> 💡 **Lưu ý:** Giá vé có thể thay đổi theo mùa và chương trình khuyến mãi. Vui lòng kiểm tra trước khi đặt vé.\n\n")
	fmt.Fprintf(b, "_Nguồn: API Sunworld chính thức • Cập nhật: %s_\n", stamp)
}

func variantLabel(v Variant) string {
	if v.AgeType != "" {
		return v.AgeType
	}
	if v.Name != "" {
		return v.Name
	}
	return "Vé"
}

func priceCell(v *Variant) string {
	if v == nil {
		return "-"
	}
	return "**" + FormatPrice(v.Price) + "đ**"
}

func ageTypes(variants []Variant) []string {
	var types []string
	seen := make(map[string]bool)
	for _, v := range variants {
		if v.AgeType != "" && !seen[v.AgeType] {
			seen[v.AgeType] = true
			types = append(types, v.AgeType)
		}
	}
	return types
}

func findVariant(variants []Variant, ageType, marker string) *Variant {
	for i, v := range variants {
		if v.AgeType == ageType && strings.Contains(strings.ToLower(v.Name), marker) && v.Price > 0 {
			return &variants[i]
		}
	}
	return nil
}

// FormatPrice renders an amount with Vietnamese dot-grouped thousands.
func FormatPrice(n int) string {
	s := fmt.Sprint(n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "." + strings.Join(parts, ".")
}
