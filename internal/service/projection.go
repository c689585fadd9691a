package service

import (
	"fmt"
	"sort"

	"github.com/campushq/course-planner-api/internal/models"
)

// courseLookup is the slice of the catalog the projector and detectors need.
type courseLookup interface {
	CourseByID(id string) (*models.Course, bool)
	Courses() []models.Course
}

// ProjectEvents expands one enrolled (course, section) pair into calendar
// events, one per weekly meeting. Unknown course or section ids yield no
// events: the catalog is static and trusted, so referential misses degrade
// silently instead of failing.
func ProjectEvents(catalog courseLookup, courseID, sectionID string) []models.CalendarEvent {
	course, ok := catalog.CourseByID(courseID)
	if !ok {
		return nil
	}
	section, ok := course.SectionByID(sectionID)
	if !ok {
		return nil
	}

	color := course.Color
	if color == "" {
		color = ColorForCourse(course.Code)
	}

	events := make([]models.CalendarEvent, 0, len(section.Schedule))
	for _, meeting := range section.Schedule {
		startHour := ParseClock(meeting.StartTime)
		endHour := ParseClock(meeting.EndTime)
		events = append(events, models.CalendarEvent{
			ID:        fmt.Sprintf("%s-%s-%g", section.ID, meeting.Day, startHour),
			CourseID:  course.ID,
			SectionID: section.ID,
			Title:     fmt.Sprintf("%s: %s %s", course.Code, section.Type, section.Number),
			Day:       meeting.Day,
			StartHour: startHour,
			EndHour:   endHour,
			Color:     color,
			Location:  section.Location,
		})
	}
	return events
}

// ProjectWorklist regenerates the full event set from the worklist. Events
// come out grouped per enrollment in worklist order, meetings sorted by day
// then start hour within each section.
func ProjectWorklist(catalog courseLookup, worklist models.Worklist) []models.CalendarEvent {
	var events []models.CalendarEvent
	for i, courseID := range worklist.Courses {
		projected := ProjectEvents(catalog, courseID, worklist.Sections[i])
		sort.SliceStable(projected, func(a, b int) bool {
			if projected[a].Day != projected[b].Day {
				return DayRank(projected[a].Day) < DayRank(projected[b].Day)
			}
			return projected[a].StartHour < projected[b].StartHour
		})
		events = append(events, projected...)
	}
	return events
}
