// Package vntime provides site-local (Asia/Ho_Chi_Minh) time helpers used to
// ground answers in "now": current day naming, day-part labels, the upcoming
// weekend and facility open/closed status.
package vntime

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

var (
	loc     *time.Location
	locOnce sync.Once
)

// Location returns the site time zone (UTC+7). Falls back to a fixed zone
// when the tzdata is unavailable in the runtime image.
func Location() *time.Location {
	locOnce.Do(func() {
		var err error
		loc, err = time.LoadLocation("Asia/Ho_Chi_Minh")
		if err != nil {
			loc = time.FixedZone("ICT", 7*3600)
		}
	})
	return loc
}

// Now returns the current site-local time.
func Now() time.Time {
	return time.Now().In(Location())
}

var dayNames = [7]string{"Thứ 2", "Thứ 3", "Thứ 4", "Thứ 5", "Thứ 6", "Thứ 7", "Chủ nhật"}

// Context carries everything the prompt needs to reason about "today",
// "this afternoon" or "next weekend".
type Context struct {
	CurrentTime       string
	CurrentDate       string
	CurrentDay        string
	CurrentHour       int
	IsWeekend         bool
	NextSaturday      string
	NextSunday        string
	TimePeriod        string
	FormattedDateTime string
}

// ContextAt builds the time context for a given instant.
func ContextAt(now time.Time) Context {
	now = now.In(Location())
	wd := weekdayIndex(now)

	daysUntilSaturday := (5 - wd + 7) % 7
	nextSaturday := now.AddDate(0, 0, daysUntilSaturday)
	nextSunday := nextSaturday.AddDate(0, 0, 1)

	return Context{
		CurrentTime:       now.Format("15:04"),
		CurrentDate:       now.Format("02/01/2006"),
		CurrentDay:        dayNames[wd],
		CurrentHour:       now.Hour(),
		IsWeekend:         wd >= 5,
		NextSaturday:      nextSaturday.Format("02/01/2006"),
		NextSunday:        nextSunday.Format("02/01/2006"),
		TimePeriod:        Period(now.Hour()),
		FormattedDateTime: now.Format("02/01/2006 lúc 15:04"),
	}
}

// Period names the part of day in Vietnamese.
func Period(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "sáng"
	case hour >= 12 && hour < 18:
		return "chiều"
	case hour >= 18 && hour < 22:
		return "tối"
	default:
		return "đêm"
	}
}

// weekdayIndex maps to Monday=0..Sunday=6.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Status describes whether a facility is currently open.
type Status struct {
	Known    bool
	Open     bool
	Text     string
	OpensAt  string
	ClosesAt string
}

// OperatingStatus evaluates a schedule string like "06:00-20:00" (or a string
// containing "closed") against the given instant.
func OperatingStatus(schedule string, at time.Time) Status {
	schedule = strings.TrimSpace(schedule)
	if strings.Contains(strings.ToLower(schedule), "closed") {
		return Status{Known: true, Open: false, Text: "đóng cửa"}
	}

	start, end, ok := parseSpan(schedule)
	if !ok {
		return Status{Text: "không rõ"}
	}

	at = at.In(Location())
	cur := at.Hour()*60 + at.Minute()

	st := Status{
		Known:    true,
		OpensAt:  fmt.Sprintf("%02d:%02d", start/60, start%60),
		ClosesAt: fmt.Sprintf("%02d:%02d", end/60, end%60),
	}

	switch {
	case cur >= start && cur <= end:
		st.Open = true
		remaining := end - cur
		if remaining >= 60 {
			st.Text = fmt.Sprintf("đang mở (còn %dh%02dp)", remaining/60, remaining%60)
		} else {
			st.Text = fmt.Sprintf("đang mở (còn %dp)", remaining)
		}
	case cur < start:
		wait := start - cur
		st.Text = fmt.Sprintf("chưa mở (còn %dh%02dp nữa)", wait/60, wait%60)
	default:
		st.Text = "đã đóng cửa"
	}
	return st
}

func parseSpan(schedule string) (start, end int, ok bool) {
	parts := strings.SplitN(schedule, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, ok = parseClock(parts[0])
	if !ok {
		return 0, 0, false
	}
	end, ok = parseClock(parts[1])
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

func parseClock(s string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
