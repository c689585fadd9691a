package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	require.Equal(t, 9.0, ParseClock("9:00"))
	require.Equal(t, 13.5, ParseClock("13:30"))
	require.Equal(t, 10.75, ParseClock("10:45"))
	require.Equal(t, 0.0, ParseClock(""))
	require.Equal(t, 0.0, ParseClock("930"))
	require.Equal(t, 0.0, ParseClock("nine:thirty"))
}

func TestFormatHour(t *testing.T) {
	require.Equal(t, "9:00", FormatHour(9))
	require.Equal(t, "13:30", FormatHour(13.5))
	require.Equal(t, "10:45", FormatHour(10.75))
}

func TestFormatHourRoundTrip(t *testing.T) {
	for _, raw := range []string{"8:00", "9:30", "12:15", "16:45"} {
		require.Equal(t, raw, FormatHour(ParseClock(raw)))
	}
}

func TestDayRank(t *testing.T) {
	require.Less(t, DayRank("Monday"), DayRank("Tuesday"))
	require.Less(t, DayRank("Thursday"), DayRank("Friday"))
	require.Greater(t, DayRank("Sunday"), DayRank("Friday"))
}

func TestColorForCourse(t *testing.T) {
	color := ColorForCourse("CORE 101")
	require.Contains(t, eventPalette, color)
	require.Equal(t, color, ColorForCourse("CORE 101"))
}
