package vntime

import (
	"testing"
	"time"
)

func TestPeriod(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{5, "sáng"},
		{11, "sáng"},
		{12, "chiều"},
		{17, "chiều"},
		{18, "tối"},
		{21, "tối"},
		{22, "đêm"},
		{3, "đêm"},
	}

	for _, tt := range tests {
		if got := Period(tt.hour); got != tt.want {
			t.Errorf("Period(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestContextAt_Weekend(t *testing.T) {
	// 2024-10-16 is a Wednesday
	wed := time.Date(2024, 10, 16, 14, 30, 0, 0, Location())

	ctx := ContextAt(wed)

	if ctx.CurrentDay != "Thứ 4" {
		t.Errorf("CurrentDay = %q, want Thứ 4", ctx.CurrentDay)
	}
	if ctx.IsWeekend {
		t.Error("Wednesday reported as weekend")
	}
	if ctx.NextSaturday != "19/10/2024" {
		t.Errorf("NextSaturday = %q, want 19/10/2024", ctx.NextSaturday)
	}
	if ctx.NextSunday != "20/10/2024" {
		t.Errorf("NextSunday = %q, want 20/10/2024", ctx.NextSunday)
	}
	if ctx.TimePeriod != "chiều" {
		t.Errorf("TimePeriod = %q, want chiều", ctx.TimePeriod)
	}
}

func TestContextAt_OnSaturday(t *testing.T) {
	// 2024-10-19 is a Saturday; "next Saturday" is today
	sat := time.Date(2024, 10, 19, 9, 0, 0, 0, Location())

	ctx := ContextAt(sat)

	if !ctx.IsWeekend {
		t.Error("Saturday not reported as weekend")
	}
	if ctx.NextSaturday != "19/10/2024" {
		t.Errorf("NextSaturday = %q, want 19/10/2024", ctx.NextSaturday)
	}
}

func TestOperatingStatus(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2024, 10, 16, h, m, 0, 0, Location())
	}

	tests := []struct {
		name     string
		schedule string
		at       time.Time
		known    bool
		open     bool
		text     string
	}{
		{"open with hours remaining", "06:00-20:00", at(10, 30), true, true, "đang mở (còn 9h30p)"},
		{"open with minutes remaining", "06:00-20:00", at(19, 30), true, true, "đang mở (còn 30p)"},
		{"before opening", "06:00-20:00", at(4, 0), true, false, "chưa mở (còn 2h00p nữa)"},
		{"after closing", "06:00-20:00", at(21, 0), true, false, "đã đóng cửa"},
		{"closed keyword", "closed", at(12, 0), true, false, "đóng cửa"},
		{"unparsable", "whenever", at(12, 0), false, false, "không rõ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := OperatingStatus(tt.schedule, tt.at)
			if st.Known != tt.known {
				t.Errorf("Known = %v, want %v", st.Known, tt.known)
			}
			if st.Open != tt.open {
				t.Errorf("Open = %v, want %v", st.Open, tt.open)
			}
			if st.Text != tt.text {
				t.Errorf("Text = %q, want %q", st.Text, tt.text)
			}
		})
	}
}
