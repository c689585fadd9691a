package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Timetable is the flattened weekly schedule handed to exporters. Entries
// arrive sorted by day then start time.
type Timetable struct {
	Title   string
	Entries []TimetableEntry
}

// TimetableEntry is one scheduled meeting row.
type TimetableEntry struct {
	Day        string
	StartLabel string
	EndLabel   string
	Course     string
	Section    string
	Location   string
}

// CSVExporter renders timetables into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

var csvHeaders = []string{"Day", "Start", "End", "Course", "Section", "Location"}

// Render produces CSV encoded bytes for the timetable.
func (e *CSVExporter) Render(t Timetable) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(csvHeaders); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, entry := range t.Entries {
		record := []string{entry.Day, entry.StartLabel, entry.EndLabel, entry.Course, entry.Section, entry.Location}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
