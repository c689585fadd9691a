package models

// Worklist is the user's current set of enrolled (course, section) pairs.
// Courses and Sections are parallel, index-aligned sequences: Sections[i]
// is the chosen section for Courses[i]. Courses never contains duplicates.
type Worklist struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Courses  []string `json:"courses"`
	Sections []string `json:"sections"`
}

// SectionFor returns the chosen section id for a course, if enrolled.
func (w *Worklist) SectionFor(courseID string) (string, bool) {
	for i, id := range w.Courses {
		if id == courseID {
			return w.Sections[i], true
		}
	}
	return "", false
}

// Contains reports whether the course is enrolled.
func (w *Worklist) Contains(courseID string) bool {
	_, ok := w.SectionFor(courseID)
	return ok
}

// Clone returns a deep copy so callers can hold snapshots safely.
func (w *Worklist) Clone() Worklist {
	out := Worklist{ID: w.ID, Name: w.Name}
	out.Courses = append([]string(nil), w.Courses...)
	out.Sections = append([]string(nil), w.Sections...)
	return out
}

// WorklistSnapshot is the read-only view handed to the presentation layer.
type WorklistSnapshot struct {
	Worklist  Worklist        `json:"worklist"`
	Events    []CalendarEvent `json:"events"`
	Conflicts []Conflict      `json:"conflicts"`
}
