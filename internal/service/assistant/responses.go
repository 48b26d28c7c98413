package assistant

import (
	"fmt"
	"time"

	"github.com/badenlabs/badenbot/pkg/vntime"
)

func greetingResponse(userName, hotline string, now time.Time) string {
	tc := vntime.ContextAt(now)
	name := userName
	if name == "" {
		name = "bạn"
	}

	return fmt.Sprintf(`Xin chào %s! 😊 Mình là trợ lý AI của Khu du lịch Núi Bà Đen, Tây Ninh.

🌟 Hôm nay là %s (%s), mình có thể giúp bạn tìm hiểu về:

🎫 **Giá vé và combo ưu đãi**
🕐 **Giờ hoạt động các dịch vụ**
🚠 **Cáp treo và phương tiện di chuyển**
🏛️ **Các điểm tham quan tâm linh**
🍽️ **Nhà hàng và ẩm thực**
📍 **Hướng dẫn tham quan**

💬 Bạn có thể hỏi mình bất cứ điều gì về Núi Bà Đen nhé! Ví dụ:
• "Giá vé cáp treo bao nhiêu?"
• "Giờ hoạt động hôm nay?"
• "Có gì hay để tham quan?"

📞 Hoặc gọi hotline %s để được hỗ trợ trực tiếp! 🙏`, name, tc.CurrentDay, tc.CurrentDate, hotline)
}

func noInfoResponse(userName, hotline string) string {
	name := userName
	if name == "" {
		name = "bạn"
	}
	return fmt.Sprintf("Xin chào %s! 😊 Mình chưa tìm thấy thông tin phù hợp trong hệ thống. Bạn có thể gọi hotline 📞 %s để được hỗ trợ nhanh nhất nhé! 🙏", name, hotline)
}

func snippetResponse(content, hotline string) string {
	runes := []rune(content)
	if len(runes) > 300 {
		content = string(runes[:300])
	}
	return fmt.Sprintf("📋 Theo thông tin từ hệ thống: %s... \n\n📞 Để biết thêm chi tiết, bạn có thể gọi hotline %s nhé! 😊", content, hotline)
}
