package models

// CalendarEvent is one derived scheduled meeting generated from an enrolled
// section. Events are never hand-edited: the full set is regenerated from
// the worklist and catalog whenever enrollment changes. The id is a
// deterministic function of (sectionId, day, startHour), so re-projecting
// the same section yields identical ids.
type CalendarEvent struct {
	ID        string  `json:"id"`
	CourseID  string  `json:"courseId"`
	SectionID string  `json:"sectionId"`
	Title     string  `json:"title"`
	Day       string  `json:"day"`
	StartHour float64 `json:"startHour"`
	EndHour   float64 `json:"endHour"`
	Color     string  `json:"color"`
	Location  string  `json:"location"`
}

// Overlaps reports whether two events collide: same day and strictly
// overlapping half-open hour intervals. Boundary-touching events
// (one ends exactly when the other starts) do not overlap.
func (e CalendarEvent) Overlaps(other CalendarEvent) bool {
	return e.Day == other.Day && e.StartHour < other.EndHour && e.EndHour > other.StartHour
}
