package service

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts a 24-hour wall-clock string ("9:00" or "13:30") into
// fractional hours since midnight, e.g. "13:30" -> 13.5. Catalog data is
// trusted to be well-formed; malformed input yields 0.
func ParseClock(raw string) float64 {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return float64(hours) + float64(minutes)/60
}

// FormatHour renders fractional hours back into an "H:MM" label.
func FormatHour(hour float64) string {
	h := int(hour)
	m := int((hour-float64(h))*60 + 0.5)
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%d:%02d", h, m)
}

var dayRank = map[string]int{
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
	"Friday":    5,
}

// DayRank orders teaching days Monday first; unknown days sort last.
func DayRank(day string) int {
	if rank, ok := dayRank[day]; ok {
		return rank
	}
	return len(dayRank) + 1
}

// eventPalette is the fixed set of calendar colors assigned to courses that
// carry no configured color.
var eventPalette = []string{"blue", "green", "purple", "orange", "pink", "teal"}

// ColorForCourse hashes a course code into the palette so the same course
// always renders the same color without persisted state.
func ColorForCourse(code string) string {
	sum := 0
	for _, ch := range code {
		sum += int(ch)
	}
	return eventPalette[sum%len(eventPalette)]
}
