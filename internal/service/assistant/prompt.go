package assistant

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pkoukk/tiktoken-go"

	"github.com/badenlabs/badenbot/internal/core"
	"github.com/badenlabs/badenbot/pkg/vntime"
)

// promptTokenBudget caps what we send to the model. Knowledge items are
// dropped from the tail until the prompt fits.
const promptTokenBudget = 6000

var (
	tk     *tiktoken.Tiktoken
	tkOnce sync.Once
)

type promptInput struct {
	UserName string
	Message  string
	History  string
	Items    []core.Item
	Hotline  string
	Now      time.Time
}

func buildPrompt(in promptInput) string {
	prompt := renderPrompt(in)

	// Vietnamese text runs under two characters per token, so short prompts
	// skip the tokenizer entirely.
	for len(in.Items) > 1 && len(prompt) > promptTokenBudget*2 && countTokens(prompt) > promptTokenBudget {
		in.Items = in.Items[:len(in.Items)-1]
		prompt = renderPrompt(in)
	}
	return prompt
}

func renderPrompt(in promptInput) string {
	tc := vntime.ContextAt(in.Now)

	dayKind := "Ngày thường"
	if tc.IsWeekend {
		dayKind = "Cuối tuần"
	}

	var b strings.Builder
	b.WriteString("🏔️ Bạn là trợ lý du lịch AI thân thiện của Khu du lịch Núi Bà Đen, Tây Ninh.\n\n")

	b.WriteString("⏰ THÔNG TIN THỜI GIAN HIỆN TẠI:\n")
	fmt.Fprintf(&b, "- Ngày giờ: %s (%s)\n", tc.FormattedDateTime, tc.CurrentDay)
	fmt.Fprintf(&b, "- Thời điểm: %s\n", tc.TimePeriod)
	fmt.Fprintf(&b, "- Loại ngày: %s\n", dayKind)
	fmt.Fprintf(&b, "- Cuối tuần tới: Thứ 7 (%s) và Chủ nhật (%s)\n\n", tc.NextSaturday, tc.NextSunday)

	b.WriteString("📋 NGUYÊN TẮC:\n")
	b.WriteString("- ✅ Chỉ sử dụng thông tin từ dữ liệu bên dưới\n")
	b.WriteString("- ❌ Không bịa đặt thông tin\n")
	b.WriteString("- 😊 Trả lời thân thiện, nhiệt tình với emoji phù hợp\n")
	b.WriteString("- ⏰ SỬ DỤNG THÔNG TIN THỜI GIAN để tư vấn chính xác (bây giờ, hôm nay, chiều nay, cuối tuần)\n")
	b.WriteString("- 🎯 Giúp du khách có trải nghiệm tuyệt vời\n")
	fmt.Fprintf(&b, "- 📞 Nếu thiếu thông tin, gợi ý gọi hotline %s\n", in.Hotline)
	b.WriteString("- 🔄 SỬ DỤNG LỊCH SỬ TRÒ CHUYỆN (trong 30 phút gần đây) để hiểu ngữ cảnh và trả lời liền mạch, tự nhiên\n\n")

	b.WriteString("🎨 PHONG CÁCH TRẢ LỜI:\n")
	b.WriteString("- Sử dụng emoji phù hợp: 🎫 (vé), 🕐 (giờ), 🏛️ (chùa), 🚠 (cáp treo), 🍽️ (ăn uống), 📍 (địa điểm), 💰 (giá), ⛰️ (núi)\n")
	b.WriteString("- Gọi tên khách hàng thân thiện\n")
	b.WriteString("- Kết thúc bằng lời chúc tốt đẹp\n")
	b.WriteString("- Khi khách hỏi \"bây giờ\", \"hôm nay\", \"chiều nay\" → dùng thông tin thời gian thực để trả lời\n")
	b.WriteString("- Tham khảo lịch sử để hiểu câu hỏi liên quan (ví dụ: \"còn gì khác?\", \"thế còn giá vé?\")\n")

	if in.History != "" {
		b.WriteString("\n💭 LỊCH SỬ TRÒ CHUYỆN GẦN ĐÂY:\n")
		b.WriteString(in.History)
	}

	b.WriteString("\n📚 DỮ LIỆU:\n")
	for i, item := range in.Items {
		fmt.Fprintf(&b, "\n%s %d. %s\n   %s\n", topicEmoji(item.Topic), i+1, item.Topic, item.Content)
	}

	name := in.UserName
	if name == "" {
		name = "Bạn"
	}
	fmt.Fprintf(&b, "\n👤 KHÁCH HÀNG: %s\n", name)
	fmt.Fprintf(&b, "💬 CÂU HỎI HIỆN TẠI: %s\n\n", in.Message)
	b.WriteString("🤖 TRẢ LỜI (thân thiện với emoji, TỐI ĐA 1200 ký tự, súc tích và đi thẳng vào vấn đề, tham khảo lịch sử để trả lời liền mạch):")

	return b.String()
}

func topicEmoji(topic string) string {
	t := strings.ToLower(topic)
	switch {
	case strings.Contains(t, "giá") || strings.Contains(t, "vé"):
		return "🎫"
	case strings.Contains(t, "giờ") || strings.Contains(t, "hoạt động"):
		return "🕐"
	case strings.Contains(t, "thời tiết"):
		return "🌤️"
	case strings.Contains(t, "ga") || strings.Contains(t, "cáp treo"):
		return "🚠"
	case strings.Contains(t, "chùa") || strings.Contains(t, "phật"):
		return "🏛️"
	case strings.Contains(t, "nhà hàng") || strings.Contains(t, "buffet"):
		return "🍽️"
	case strings.Contains(t, "điểm tham quan"):
		return "📍"
	}
	return "📌"
}

func countTokens(s string) int {
	tkOnce.Do(func() {
		var err error
		tk, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			panic("failed to load tiktoken: " + err.Error())
		}
	})
	return len(tk.Encode(s, nil, nil))
}
