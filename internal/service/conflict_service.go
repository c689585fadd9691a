package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/campushq/course-planner-api/internal/models"
)

// ConflictDetector derives the conflict set for a worklist: pairwise time
// overlaps between calendar events plus missing prerequisite and corequisite
// enrollments. Detection is deterministic and idempotent: conflict ids are
// pure functions of the participating course ids, and every emit is
// deduplicated by id.
type ConflictDetector struct {
	catalog courseLookup
	logger  *zap.Logger
}

// NewConflictDetector wires detector dependencies.
func NewConflictDetector(catalog courseLookup, logger *zap.Logger) *ConflictDetector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConflictDetector{catalog: catalog, logger: logger}
}

// DetectTimeConflicts compares every unordered pair of events from different
// courses and emits one time conflict per colliding course pair. The
// existing set participates in id deduplication so incremental callers never
// double-report.
func (d *ConflictDetector) DetectTimeConflicts(events []models.CalendarEvent, existing []models.Conflict) []models.Conflict {
	seen := make(map[string]bool, len(existing))
	for _, conflict := range existing {
		seen[conflict.ID] = true
	}

	var found []models.Conflict
	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			e1, e2 := events[i], events[j]
			if e1.CourseID == e2.CourseID {
				continue
			}
			if !e1.Overlaps(e2) {
				continue
			}

			// Course ids in encounter order; either ordering names the
			// same collision, so both ids are checked.
			id := models.TimeConflictID(e1.CourseID, e2.CourseID)
			mirrored := models.TimeConflictID(e2.CourseID, e1.CourseID)
			if seen[id] || seen[mirrored] {
				continue
			}

			course1, ok1 := d.catalog.CourseByID(e1.CourseID)
			course2, ok2 := d.catalog.CourseByID(e2.CourseID)
			if !ok1 || !ok2 {
				continue
			}

			found = append(found, models.Conflict{
				ID:          id,
				Kind:        models.ConflictKindTime,
				Description: fmt.Sprintf("Time conflict between %s and %s on %s", course1.Code, course2.Code, e1.Day),
				CourseIDs:   []string{e1.CourseID, e2.CourseID},
				SectionIDs:  []string{e1.SectionID, e2.SectionID},
				Suggestions: []string{
					fmt.Sprintf("Try a different section of %s", course1.Code),
					fmt.Sprintf("Try a different section of %s", course2.Code),
					"Remove one of the conflicting courses",
				},
			})
			seen[id] = true
		}
	}
	return found
}

// DetectPrerequisiteConflicts flags every enrolled course whose resolved
// prerequisite course is absent from the enrolled set.
func (d *ConflictDetector) DetectPrerequisiteConflicts(enrolledCourseIDs []string) []models.Conflict {
	return d.detectRequirementConflicts(enrolledCourseIDs, requirementPrerequisite)
}

// DetectCorequisiteConflicts is the corequisite counterpart: an enrolled
// course whose corequisite resolves to a catalog course not currently
// enrolled triggers a corequisite conflict.
func (d *ConflictDetector) DetectCorequisiteConflicts(enrolledCourseIDs []string) []models.Conflict {
	return d.detectRequirementConflicts(enrolledCourseIDs, requirementCorequisite)
}

// DetectAll recomputes the full conflict set for the current enrollment:
// injected fixture conflicts pass through first, then derived time,
// prerequisite, and corequisite conflicts, all deduplicated by id. Running
// it twice over unchanged input yields an identical set.
func (d *ConflictDetector) DetectAll(events []models.CalendarEvent, enrolledCourseIDs []string, fixtures []models.Conflict) []models.Conflict {
	conflicts := make([]models.Conflict, 0, len(fixtures))
	seen := make(map[string]bool, len(fixtures))
	for _, fixture := range fixtures {
		if seen[fixture.ID] {
			continue
		}
		conflicts = append(conflicts, fixture)
		seen[fixture.ID] = true
	}

	for _, conflict := range d.DetectTimeConflicts(events, conflicts) {
		if !seen[conflict.ID] {
			conflicts = append(conflicts, conflict)
			seen[conflict.ID] = true
		}
	}
	for _, conflict := range d.DetectPrerequisiteConflicts(enrolledCourseIDs) {
		if !seen[conflict.ID] {
			conflicts = append(conflicts, conflict)
			seen[conflict.ID] = true
		}
	}
	for _, conflict := range d.DetectCorequisiteConflicts(enrolledCourseIDs) {
		if !seen[conflict.ID] {
			conflicts = append(conflicts, conflict)
			seen[conflict.ID] = true
		}
	}
	return conflicts
}

type requirementKind int

const (
	requirementPrerequisite requirementKind = iota
	requirementCorequisite
)

func (d *ConflictDetector) detectRequirementConflicts(enrolledCourseIDs []string, kind requirementKind) []models.Conflict {
	enrolled := make(map[string]bool, len(enrolledCourseIDs))
	for _, id := range enrolledCourseIDs {
		enrolled[id] = true
	}

	var conflicts []models.Conflict
	for _, courseID := range enrolledCourseIDs {
		course, ok := d.catalog.CourseByID(courseID)
		if !ok {
			continue
		}

		for _, required := range d.requiredCourses(course, kind) {
			if enrolled[required.ID] {
				continue
			}
			conflicts = append(conflicts, d.requirementConflict(course, required, kind))
		}
	}
	return conflicts
}

// requiredCourses resolves a course's requirement list to catalog courses.
// Structured course-id references win; free-text entries fall back to
// best-effort text matching. Unresolvable text is silently skipped: the
// data cannot be interpreted, which is a gap, not an error.
func (d *ConflictDetector) requiredCourses(course *models.Course, kind requirementKind) []*models.Course {
	structured := course.PrerequisiteCourseIDs
	freeText := course.Prerequisites
	if kind == requirementCorequisite {
		structured = course.CorequisiteCourseIDs
		freeText = course.Corequisites
	}

	var required []*models.Course
	if len(structured) > 0 {
		for _, id := range structured {
			if resolved, ok := d.catalog.CourseByID(id); ok {
				required = append(required, resolved)
			}
		}
		return required
	}

	for _, reference := range freeText {
		if resolved, ok := d.resolveReference(reference); ok {
			required = append(required, resolved)
		} else {
			d.logger.Debug("unresolvable course reference",
				zap.String("course", course.Code),
				zap.String("reference", reference))
		}
	}
	return required
}

// resolveReference maps a free-text course reference onto a catalog course.
// Matching order: the reference contains the candidate code, the candidate
// code contains the reference, or the candidate title contains the
// reference. First match wins.
func (d *ConflictDetector) resolveReference(reference string) (*models.Course, bool) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, false
	}
	courses := d.catalog.Courses()
	for i := range courses {
		candidate := &courses[i]
		if strings.Contains(reference, candidate.Code) ||
			strings.Contains(candidate.Code, reference) ||
			strings.Contains(candidate.Title, reference) {
			return candidate, true
		}
	}
	return nil, false
}

func (d *ConflictDetector) requirementConflict(course, required *models.Course, kind requirementKind) models.Conflict {
	if kind == requirementCorequisite {
		return models.Conflict{
			ID:          models.CorequisiteConflictID(course.ID, required.ID),
			Kind:        models.ConflictKindCorequisite,
			Description: fmt.Sprintf("%s requires corequisite %s", course.Code, required.Code),
			CourseIDs:   []string{course.ID},
			SectionIDs:  []string{},
			Suggestions: []string{
				fmt.Sprintf("Add %s to your schedule", required.Code),
				fmt.Sprintf("Remove %s from your schedule", course.Code),
			},
		}
	}
	return models.Conflict{
		ID:          models.PrerequisiteConflictID(course.ID, required.ID),
		Kind:        models.ConflictKindPrerequisite,
		Description: fmt.Sprintf("%s requires prerequisite %s", course.Code, required.Code),
		CourseIDs:   []string{course.ID},
		SectionIDs:  []string{},
		Suggestions: []string{
			fmt.Sprintf("Add %s to your schedule", required.Code),
			fmt.Sprintf("Remove %s from your schedule", course.Code),
			"Check if you've already completed this prerequisite",
		},
	}
}
