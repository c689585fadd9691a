package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders a weekly timetable into a printable PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a PDF document grouping meetings by weekday.
func (e *PDFExporter) Render(t Timetable) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	title := t.Title
	if title == "" {
		title = "Weekly Schedule"
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, strings.ToUpper(title), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	byDay := make(map[string][]TimetableEntry)
	var dayOrder []string
	for _, entry := range t.Entries {
		if _, seen := byDay[entry.Day]; !seen {
			dayOrder = append(dayOrder, entry.Day)
		}
		byDay[entry.Day] = append(byDay[entry.Day], entry)
	}

	widths := []float64{28, 34, 70, 58}
	headers := []string{"Time", "Course", "Title / Section", "Location"}

	for _, day := range dayOrder {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, day, "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "B", 9)
		for i, header := range headers {
			pdf.CellFormat(widths[i], 7, header, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, entry := range byDay[day] {
			window := fmt.Sprintf("%s-%s", entry.StartLabel, entry.EndLabel)
			pdf.CellFormat(widths[0], 7, window, "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[1], 7, entry.Course, "1", 0, "", false, 0, "")
			pdf.CellFormat(widths[2], 7, entry.Section, "1", 0, "", false, 0, "")
			pdf.CellFormat(widths[3], 7, entry.Location, "1", 0, "", false, 0, "")
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	if len(dayOrder) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 8, "No scheduled meetings.", "", 1, "L", false, 0, "")
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
