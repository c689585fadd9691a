package models

import "fmt"

// ConflictKind is the closed set of conflict categories the detectors
// produce. Capacity conflicts are never derived; they only enter the system
// as fixture data and pass through untouched.
type ConflictKind string

// Conflict kinds.
const (
	ConflictKindTime         ConflictKind = "time"
	ConflictKindPrerequisite ConflictKind = "prerequisite"
	ConflictKindCorequisite  ConflictKind = "corequisite"
	ConflictKindCapacity     ConflictKind = "capacity"
)

// Conflict is a detected inconsistency in the worklist. The id is derived
// deterministically from the kind and the participating course ids so that
// re-detection is idempotent: the same condition always maps to the same id
// and duplicates are suppressed by id.
type Conflict struct {
	ID          string       `json:"id"`
	Kind        ConflictKind `json:"type"`
	Description string       `json:"description"`
	CourseIDs   []string     `json:"courseIds"`
	SectionIDs  []string     `json:"sectionIds"`
	Suggestions []string     `json:"suggestions"`
}

// Involves reports whether the conflict references the given course.
func (c *Conflict) Involves(courseID string) bool {
	for _, id := range c.CourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}

// TimeConflictID derives the id for a time conflict between two courses.
// Course ids appear in event-encounter order, not sorted; lookups by course
// id must tolerate either order.
func TimeConflictID(courseA, courseB string) string {
	return fmt.Sprintf("conflict-time-%s-%s", courseA, courseB)
}

// PrerequisiteConflictID derives the id for a missing-prerequisite conflict.
func PrerequisiteConflictID(courseID, prereqID string) string {
	return fmt.Sprintf("conflict-prereq-%s-%s", courseID, prereqID)
}

// CorequisiteConflictID derives the id for a missing-corequisite conflict.
func CorequisiteConflictID(courseID, coreqID string) string {
	return fmt.Sprintf("conflict-coreq-%s-%s", courseID, coreqID)
}
