package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campushq/course-planner-api/internal/models"
)

// CatalogRepository loads the course catalog from Postgres. The planner
// treats the catalog as read-only; rows are fetched once at startup and the
// assembled courses are held in memory afterwards.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository wraps the provided database handle.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

type courseRow struct {
	ID          string `db:"id"`
	Code        string `db:"code"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Credits     int    `db:"credits"`
	Color       string `db:"color"`
}

type requirementRow struct {
	CourseID  string `db:"course_id"`
	Kind      string `db:"kind"`
	Reference string `db:"reference"`
}

type sectionRow struct {
	ID             string `db:"id"`
	CourseID       string `db:"course_id"`
	Type           string `db:"type"`
	Number         string `db:"number"`
	Instructor     string `db:"instructor"`
	Location       string `db:"location"`
	SeatsAvailable int    `db:"seats_available"`
	TotalSeats     int    `db:"total_seats"`
}

type meetingRow struct {
	SectionID string `db:"section_id"`
	Day       string `db:"day_of_week"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
}

// LoadCourses fetches the full catalog and assembles the nested course
// structures in catalog order.
func (r *CatalogRepository) LoadCourses(ctx context.Context) ([]models.Course, error) {
	var courseRows []courseRow
	if err := r.db.SelectContext(ctx, &courseRows, `
		SELECT id, code, title, description, credits, COALESCE(color, '') AS color
		FROM courses
		ORDER BY code`); err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}

	var requirementRows []requirementRow
	if err := r.db.SelectContext(ctx, &requirementRows, `
		SELECT course_id, kind, reference
		FROM course_requirements
		ORDER BY course_id, kind, reference`); err != nil {
		return nil, fmt.Errorf("load course requirements: %w", err)
	}

	var sectionRows []sectionRow
	if err := r.db.SelectContext(ctx, &sectionRows, `
		SELECT id, course_id, type, number, instructor, location, seats_available, total_seats
		FROM sections
		ORDER BY course_id, number`); err != nil {
		return nil, fmt.Errorf("load sections: %w", err)
	}

	var meetingRows []meetingRow
	if err := r.db.SelectContext(ctx, &meetingRows, `
		SELECT section_id, day_of_week, start_time, end_time
		FROM section_meetings
		ORDER BY section_id`); err != nil {
		return nil, fmt.Errorf("load section meetings: %w", err)
	}

	meetingsBySection := make(map[string][]models.ScheduleEntry, len(sectionRows))
	for _, row := range meetingRows {
		meetingsBySection[row.SectionID] = append(meetingsBySection[row.SectionID], models.ScheduleEntry{
			Day:       row.Day,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
		})
	}

	sectionsByCourse := make(map[string][]models.Section, len(courseRows))
	for _, row := range sectionRows {
		sectionsByCourse[row.CourseID] = append(sectionsByCourse[row.CourseID], models.Section{
			ID:             row.ID,
			CourseID:       row.CourseID,
			Type:           models.SectionType(row.Type),
			Number:         row.Number,
			Instructor:     row.Instructor,
			Schedule:       meetingsBySection[row.ID],
			Location:       row.Location,
			SeatsAvailable: row.SeatsAvailable,
			TotalSeats:     row.TotalSeats,
		})
	}

	prereqsByCourse := make(map[string][]string)
	coreqsByCourse := make(map[string][]string)
	for _, row := range requirementRows {
		switch row.Kind {
		case "prerequisite":
			prereqsByCourse[row.CourseID] = append(prereqsByCourse[row.CourseID], row.Reference)
		case "corequisite":
			coreqsByCourse[row.CourseID] = append(coreqsByCourse[row.CourseID], row.Reference)
		}
	}

	courses := make([]models.Course, 0, len(courseRows))
	for _, row := range courseRows {
		courses = append(courses, models.Course{
			ID:            row.ID,
			Code:          row.Code,
			Title:         row.Title,
			Description:   row.Description,
			Credits:       row.Credits,
			Color:         row.Color,
			Prerequisites: prereqsByCourse[row.ID],
			Corequisites:  coreqsByCourse[row.ID],
			Sections:      sectionsByCourse[row.ID],
		})
	}
	return courses, nil
}
