package conversation

import "testing"

func TestIsGreeting(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"Xin chào", true},
		{"chào bạn", true},
		{"Hello", true},
		{"hi", true},
		{"Alo alo", true},
		{"Good morning", true},
		{"Chào bạn, giá vé bao nhiêu", false},
		{"Xin chào, chùa Bà ở đâu", false},
		{"Giá vé cáp treo bao nhiêu tiền vậy", false},
		{"xin chào mình muốn hỏi về giá vé cáp treo", false},
		{"", false},
		{"   ", false},
		{"núi Bà Đen cao bao nhiêu", false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := IsGreeting(tt.message); got != tt.want {
				t.Errorf("IsGreeting(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}
