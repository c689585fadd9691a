package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campushq/course-planner-api/internal/models"
)

func TestProjectEvents(t *testing.T) {
	catalog := newTestCatalog()

	events := ProjectEvents(catalog, "algebra", "alg-1")
	require.Len(t, events, 2)

	first := events[0]
	require.Equal(t, "alg-1-Monday-9", first.ID)
	require.Equal(t, "algebra", first.CourseID)
	require.Equal(t, "alg-1", first.SectionID)
	require.Equal(t, "MATH 101: Lecture 001", first.Title)
	require.Equal(t, models.DayMonday, first.Day)
	require.Equal(t, 9.0, first.StartHour)
	require.Equal(t, 10.5, first.EndHour)
	require.Equal(t, "Hall A", first.Location)
	require.Contains(t, eventPalette, first.Color)
}

func TestProjectEventsFractionalStartInID(t *testing.T) {
	catalog := newTestCatalog()

	events := ProjectEvents(catalog, "biology", "bio-2")
	require.Len(t, events, 1)
	require.Equal(t, "bio-2-Monday-10.5", events[0].ID)
}

func TestProjectEventsUnknownIDs(t *testing.T) {
	catalog := newTestCatalog()

	require.Empty(t, ProjectEvents(catalog, "no-such-course", "alg-1"))
	require.Empty(t, ProjectEvents(catalog, "algebra", "no-such-section"))
}

func TestProjectEventsKeepsConfiguredColor(t *testing.T) {
	catalog := newTestCatalog()
	catalog.courses[0].Color = "teal"

	events := ProjectEvents(catalog, "algebra", "alg-1")
	require.Equal(t, "teal", events[0].Color)
}

func TestProjectWorklistSortsMeetingsWithinSection(t *testing.T) {
	catalog := &stubCatalog{courses: []models.Course{
		{
			ID:   "writing",
			Code: "ENGL 101",
			Sections: []models.Section{
				{
					ID: "writ-1", CourseID: "writing", Type: models.SectionTypeLecture, Number: "001",
					Schedule: []models.ScheduleEntry{
						{Day: models.DayFriday, StartTime: "9:00", EndTime: "10:00"},
						{Day: models.DayMonday, StartTime: "14:00", EndTime: "15:00"},
						{Day: models.DayMonday, StartTime: "9:00", EndTime: "10:00"},
					},
				},
			},
		},
	}}

	worklist := models.Worklist{Courses: []string{"writing"}, Sections: []string{"writ-1"}}
	events := ProjectWorklist(catalog, worklist)
	require.Len(t, events, 3)
	require.Equal(t, models.DayMonday, events[0].Day)
	require.Equal(t, 9.0, events[0].StartHour)
	require.Equal(t, models.DayMonday, events[1].Day)
	require.Equal(t, 14.0, events[1].StartHour)
	require.Equal(t, models.DayFriday, events[2].Day)
}

func TestCalendarEventOverlaps(t *testing.T) {
	base := models.CalendarEvent{Day: models.DayMonday, StartHour: 9, EndHour: 10.5}

	require.True(t, base.Overlaps(models.CalendarEvent{Day: models.DayMonday, StartHour: 10, EndHour: 11}))
	require.True(t, base.Overlaps(models.CalendarEvent{Day: models.DayMonday, StartHour: 8, EndHour: 12}))
	require.False(t, base.Overlaps(models.CalendarEvent{Day: models.DayMonday, StartHour: 10.5, EndHour: 11.5}))
	require.False(t, base.Overlaps(models.CalendarEvent{Day: models.DayTuesday, StartHour: 9, EndHour: 10.5}))
}
