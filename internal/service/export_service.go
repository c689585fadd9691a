package service

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/campushq/course-planner-api/internal/models"
	appErrors "github.com/campushq/course-planner-api/pkg/errors"
	"github.com/campushq/course-planner-api/pkg/export"
)

// Export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

// ExportService renders the current schedule as a downloadable document.
type ExportService struct {
	catalog courseLookup
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
}

// NewExportService builds the exporter facade.
func NewExportService(catalog courseLookup, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		catalog: catalog,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
	}
}

// Render produces the schedule document in the requested format and returns
// the bytes together with the response content type.
func (s *ExportService) Render(snapshot *models.WorklistSnapshot, format string) ([]byte, string, error) {
	timetable := s.timetable(snapshot)

	switch format {
	case ExportFormatCSV:
		data, err := s.csv.Render(timetable)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return data, "text/csv", nil
	case ExportFormatPDF:
		data, err := s.pdf.Render(timetable)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return data, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

// timetable flattens the snapshot's events into exporter rows ordered by
// weekday then start time.
func (s *ExportService) timetable(snapshot *models.WorklistSnapshot) export.Timetable {
	events := append([]models.CalendarEvent(nil), snapshot.Events...)
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Day != events[j].Day {
			return DayRank(events[i].Day) < DayRank(events[j].Day)
		}
		return events[i].StartHour < events[j].StartHour
	})

	entries := make([]export.TimetableEntry, 0, len(events))
	for _, event := range events {
		code := event.CourseID
		sectionLabel := event.SectionID
		if course, ok := s.catalog.CourseByID(event.CourseID); ok {
			code = course.Code
			if section, ok := course.SectionByID(event.SectionID); ok {
				sectionLabel = fmt.Sprintf("%s / %s %s", course.Title, section.Type, section.Number)
			}
		}
		entries = append(entries, export.TimetableEntry{
			Day:        event.Day,
			StartLabel: FormatHour(event.StartHour),
			EndLabel:   FormatHour(event.EndHour),
			Course:     code,
			Section:    sectionLabel,
			Location:   event.Location,
		})
	}

	return export.Timetable{Title: snapshot.Worklist.Name, Entries: entries}
}
