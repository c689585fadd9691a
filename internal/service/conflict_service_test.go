package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campushq/course-planner-api/internal/models"
)

// stubCatalog is a fixed in-memory course lookup for detector tests.
type stubCatalog struct {
	courses []models.Course
}

func (s *stubCatalog) CourseByID(id string) (*models.Course, bool) {
	for i := range s.courses {
		if s.courses[i].ID == id {
			return &s.courses[i], true
		}
	}
	return nil, false
}

func (s *stubCatalog) Courses() []models.Course {
	return s.courses
}

func newTestCatalog() *stubCatalog {
	return &stubCatalog{courses: []models.Course{
		{
			ID:    "algebra",
			Code:  "MATH 101",
			Title: "Introductory Algebra",
			Sections: []models.Section{
				{
					ID: "alg-1", CourseID: "algebra", Type: models.SectionTypeLecture, Number: "001",
					Location: "Hall A",
					Schedule: []models.ScheduleEntry{
						{Day: models.DayMonday, StartTime: "9:00", EndTime: "10:30"},
						{Day: models.DayWednesday, StartTime: "9:00", EndTime: "10:30"},
					},
				},
				{
					ID: "alg-2", CourseID: "algebra", Type: models.SectionTypeLecture, Number: "002",
					Location: "Hall A",
					Schedule: []models.ScheduleEntry{
						{Day: models.DayMonday, StartTime: "13:00", EndTime: "14:30"},
					},
				},
			},
		},
		{
			ID:    "biology",
			Code:  "BIO 101",
			Title: "Foundations of Biology",
			Sections: []models.Section{
				{
					ID: "bio-1", CourseID: "biology", Type: models.SectionTypeLecture, Number: "001",
					Location: "Hall B",
					Schedule: []models.ScheduleEntry{
						{Day: models.DayMonday, StartTime: "10:00", EndTime: "11:00"},
					},
				},
				{
					ID: "bio-2", CourseID: "biology", Type: models.SectionTypeLecture, Number: "002",
					Location: "Hall B",
					Schedule: []models.ScheduleEntry{
						{Day: models.DayMonday, StartTime: "10:30", EndTime: "11:30"},
					},
				},
			},
		},
		{
			ID:            "chemistry",
			Code:          "CHEM 201",
			Title:         "Organic Chemistry",
			Prerequisites: []string{"BIO 101"},
			Sections: []models.Section{
				{
					ID: "chem-1", CourseID: "chemistry", Type: models.SectionTypeLecture, Number: "001",
					Location: "Lab 1",
					Schedule: []models.ScheduleEntry{
						{Day: models.DayFriday, StartTime: "14:00", EndTime: "15:30"},
					},
				},
			},
		},
		{
			ID:                    "physics",
			Code:                  "PHYS 201",
			Title:                 "Classical Mechanics",
			PrerequisiteCourseIDs: []string{"algebra"},
			Sections: []models.Section{
				{
					ID: "phys-1", CourseID: "physics", Type: models.SectionTypeLecture, Number: "001",
					Location: "Hall C",
					Schedule: []models.ScheduleEntry{
						{Day: models.DayThursday, StartTime: "9:00", EndTime: "10:30"},
					},
				},
			},
		},
		{
			ID:                   "chem-lab",
			Code:                 "CHEM 201L",
			Title:                "Organic Chemistry Lab",
			CorequisiteCourseIDs: []string{"chemistry"},
			Sections: []models.Section{
				{
					ID: "chem-lab-1", CourseID: "chem-lab", Type: models.SectionTypeLab, Number: "L01",
					Location: "Lab 2",
					Schedule: []models.ScheduleEntry{
						{Day: models.DayTuesday, StartTime: "14:00", EndTime: "17:00"},
					},
				},
			},
		},
	}}
}

func TestDetectTimeConflictsOverlap(t *testing.T) {
	catalog := newTestCatalog()
	detector := NewConflictDetector(catalog, nil)

	events := append(
		ProjectEvents(catalog, "algebra", "alg-1"),
		ProjectEvents(catalog, "biology", "bio-1")...,
	)

	conflicts := detector.DetectTimeConflicts(events, nil)
	require.Len(t, conflicts, 1)

	conflict := conflicts[0]
	require.Equal(t, "conflict-time-algebra-biology", conflict.ID)
	require.Equal(t, models.ConflictKindTime, conflict.Kind)
	require.Equal(t, "Time conflict between MATH 101 and BIO 101 on Monday", conflict.Description)
	require.Equal(t, []string{"algebra", "biology"}, conflict.CourseIDs)
	require.Equal(t, []string{"alg-1", "bio-1"}, conflict.SectionIDs)
	require.Len(t, conflict.Suggestions, 3)
}

func TestDetectTimeConflictsBoundaryTouchIsNotAConflict(t *testing.T) {
	catalog := newTestCatalog()
	detector := NewConflictDetector(catalog, nil)

	// alg-1 ends 10:30 on Monday, bio-2 starts 10:30.
	events := append(
		ProjectEvents(catalog, "algebra", "alg-1"),
		ProjectEvents(catalog, "biology", "bio-2")...,
	)

	require.Empty(t, detector.DetectTimeConflicts(events, nil))
}

func TestDetectTimeConflictsIgnoresSameCourse(t *testing.T) {
	catalog := newTestCatalog()
	detector := NewConflictDetector(catalog, nil)

	events := []models.CalendarEvent{
		{ID: "a", CourseID: "algebra", SectionID: "alg-1", Day: models.DayMonday, StartHour: 9, EndHour: 10.5},
		{ID: "b", CourseID: "algebra", SectionID: "alg-2", Day: models.DayMonday, StartHour: 9.5, EndHour: 11},
	}

	require.Empty(t, detector.DetectTimeConflicts(events, nil))
}

func TestDetectTimeConflictsDifferentDays(t *testing.T) {
	catalog := newTestCatalog()
	detector := NewConflictDetector(catalog, nil)

	events := []models.CalendarEvent{
		{ID: "a", CourseID: "algebra", SectionID: "alg-1", Day: models.DayMonday, StartHour: 9, EndHour: 10.5},
		{ID: "b", CourseID: "biology", SectionID: "bio-1", Day: models.DayTuesday, StartHour: 9, EndHour: 10.5},
	}

	require.Empty(t, detector.DetectTimeConflicts(events, nil))
}

func TestDetectTimeConflictsMirroredIDDedup(t *testing.T) {
	catalog := newTestCatalog()
	detector := NewConflictDetector(catalog, nil)

	events := append(
		ProjectEvents(catalog, "algebra", "alg-1"),
		ProjectEvents(catalog, "biology", "bio-1")...,
	)
	existing := []models.Conflict{{ID: models.TimeConflictID("biology", "algebra")}}

	require.Empty(t, detector.DetectTimeConflicts(events, existing))
}

func TestDetectPrerequisiteConflictsFreeText(t *testing.T) {
	catalog := newTestCatalog()
	detector := NewConflictDetector(catalog, nil)

	// CHEM 201 lists "BIO 101" as free text; biology is not enrolled.
	conflicts := detector.DetectPrerequisiteConflicts([]string{"chemistry"})
	require.Len(t, conflicts, 1)
	require.Equal(t, "conflict-prereq-chemistry-biology", conflicts[0].ID)
	require.Equal(t, models.ConflictKindPrerequisite, conflicts[0].Kind)
	require.Equal(t, "CHEM 201 requires prerequisite BIO 101", conflicts[0].Description)
	require.Equal(t, []string{"chemistry"}, conflicts[0].CourseIDs)

	require.Empty(t, detector.DetectPrerequisiteConflicts([]string{"chemistry", "biology"}))
}

func TestDetectPrerequisiteConflictsStructuredIDs(t *testing.T) {
	catalog := newTestCatalog()
	detector := NewConflictDetector(catalog, nil)

	conflicts := detector.DetectPrerequisiteConflicts([]string{"physics"})
	require.Len(t, conflicts, 1)
	require.Equal(t, "conflict-prereq-physics-algebra", conflicts[0].ID)

	require.Empty(t, detector.DetectPrerequisiteConflicts([]string{"physics", "algebra"}))
}

func TestDetectCorequisiteConflicts(t *testing.T) {
	catalog := newTestCatalog()
	detector := NewConflictDetector(catalog, nil)

	conflicts := detector.DetectCorequisiteConflicts([]string{"chem-lab"})
	require.Len(t, conflicts, 1)
	require.Equal(t, "conflict-coreq-chem-lab-chemistry", conflicts[0].ID)
	require.Equal(t, models.ConflictKindCorequisite, conflicts[0].Kind)
	require.Equal(t, "CHEM 201L requires corequisite CHEM 201", conflicts[0].Description)

	require.Empty(t, detector.DetectCorequisiteConflicts([]string{"chem-lab", "chemistry"}))
}

func TestDetectRequirementSkipsUnresolvableText(t *testing.T) {
	catalog := newTestCatalog()
	catalog.courses = append(catalog.courses, models.Course{
		ID:            "seminar",
		Code:          "SEM 400",
		Title:         "Capstone Seminar",
		Prerequisites: []string{"departmental approval"},
	})
	detector := NewConflictDetector(catalog, nil)

	require.Empty(t, detector.DetectPrerequisiteConflicts([]string{"seminar"}))
}

func TestDetectAllOrdersFixturesFirstAndDedups(t *testing.T) {
	catalog := newTestCatalog()
	detector := NewConflictDetector(catalog, nil)

	enrolled := []string{"algebra", "biology", "chem-lab"}
	events := append(
		ProjectEvents(catalog, "algebra", "alg-1"),
		ProjectEvents(catalog, "biology", "bio-1")...,
	)
	fixtures := []models.Conflict{
		{ID: "conflict-capacity-1", Kind: models.ConflictKindCapacity, CourseIDs: []string{"biology"}},
		{ID: "conflict-capacity-1", Kind: models.ConflictKindCapacity, CourseIDs: []string{"biology"}},
	}

	conflicts := detector.DetectAll(events, enrolled, fixtures)
	require.Len(t, conflicts, 3)
	require.Equal(t, "conflict-capacity-1", conflicts[0].ID)
	require.Equal(t, "conflict-time-algebra-biology", conflicts[1].ID)
	require.Equal(t, "conflict-coreq-chem-lab-chemistry", conflicts[2].ID)

	again := detector.DetectAll(events, enrolled, fixtures)
	require.Equal(t, conflicts, again)
}
