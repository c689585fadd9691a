package models

// SectionType enumerates the kinds of scheduled course sections.
type SectionType string

// Possible section types.
const (
	SectionTypeLecture  SectionType = "Lecture"
	SectionTypeLab      SectionType = "Lab"
	SectionTypeTutorial SectionType = "Tutorial"
)

// Weekday names used by catalog schedule entries. Courses only meet on
// teaching days.
const (
	DayMonday    = "Monday"
	DayTuesday   = "Tuesday"
	DayWednesday = "Wednesday"
	DayThursday  = "Thursday"
	DayFriday    = "Friday"
)

// ScheduleEntry is a single weekly meeting of a section. Times are 24-hour
// wall-clock strings ("9:00" or "13:30"); startTime precedes endTime.
type ScheduleEntry struct {
	Day       string `db:"day_of_week" json:"day" validate:"required"`
	StartTime string `db:"start_time" json:"startTime" validate:"required"`
	EndTime   string `db:"end_time" json:"endTime" validate:"required"`
}

// Section is a specific scheduled offering of a course.
type Section struct {
	ID             string          `db:"id" json:"id"`
	CourseID       string          `db:"course_id" json:"courseId"`
	Type           SectionType     `db:"type" json:"type"`
	Number         string          `db:"number" json:"number"`
	Instructor     string          `db:"instructor" json:"instructor"`
	Schedule       []ScheduleEntry `json:"schedule"`
	Location       string          `db:"location" json:"location"`
	SeatsAvailable int             `db:"seats_available" json:"seatsAvailable"`
	TotalSeats     int             `db:"total_seats" json:"totalSeats"`
}

// Course is an immutable catalog entry. Code is the human-readable label
// ("CORE 101") matched against free-text prerequisite strings when no
// structured course-id reference exists.
type Course struct {
	ID          string `db:"id" json:"id"`
	Code        string `db:"code" json:"code"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Credits     int    `db:"credits" json:"credits"`
	Color       string `db:"color" json:"color,omitempty"`

	// Structured references resolved at catalog load; preferred over the
	// free-text lists below when present.
	PrerequisiteCourseIDs []string `json:"prerequisiteCourseIds,omitempty"`
	CorequisiteCourseIDs  []string `json:"corequisiteCourseIds,omitempty"`

	Prerequisites []string  `json:"prerequisites"`
	Corequisites  []string  `json:"corequisites"`
	Sections      []Section `json:"sections"`
}

// SectionByID returns the owned section with the given id.
func (c *Course) SectionByID(id string) (*Section, bool) {
	for i := range c.Sections {
		if c.Sections[i].ID == id {
			return &c.Sections[i], true
		}
	}
	return nil, false
}

// CourseFilter narrows catalog searches.
type CourseFilter struct {
	Query    string
	Page     int
	PageSize int
}
