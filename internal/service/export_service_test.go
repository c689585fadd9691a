package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campushq/course-planner-api/internal/models"
)

func exportSnapshot(t *testing.T) *models.WorklistSnapshot {
	t.Helper()
	catalog := newTestCatalog()
	worklist := models.Worklist{
		ID:       "wl-1",
		Name:     "Fall Draft",
		Courses:  []string{"physics", "algebra"},
		Sections: []string{"phys-1", "alg-1"},
	}
	return &models.WorklistSnapshot{
		Worklist: worklist,
		Events:   ProjectWorklist(catalog, worklist),
	}
}

func TestExportCSV(t *testing.T) {
	svc := NewExportService(newTestCatalog(), nil)

	data, contentType, err := svc.Render(exportSnapshot(t), ExportFormatCSV)
	require.NoError(t, err)
	require.Equal(t, "text/csv", contentType)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "Day,Start,End,Course,Section,Location", lines[0])

	// Rows sorted Monday first regardless of worklist order.
	require.True(t, strings.HasPrefix(lines[1], "Monday,9:00,10:30,MATH 101"))
	require.True(t, strings.HasPrefix(lines[2], "Wednesday,9:00,10:30,MATH 101"))
	require.True(t, strings.HasPrefix(lines[3], "Thursday,9:00,10:30,PHYS 201"))
}

func TestExportPDF(t *testing.T) {
	svc := NewExportService(newTestCatalog(), nil)

	data, contentType, err := svc.Render(exportSnapshot(t), ExportFormatPDF)
	require.NoError(t, err)
	require.Equal(t, "application/pdf", contentType)
	require.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := NewExportService(newTestCatalog(), nil)

	_, _, err := svc.Render(exportSnapshot(t), "xlsx")
	require.Error(t, err)
}

func TestExportEmptySchedule(t *testing.T) {
	svc := NewExportService(newTestCatalog(), nil)

	snapshot := &models.WorklistSnapshot{Worklist: models.Worklist{Name: "Empty"}}
	data, _, err := svc.Render(snapshot, ExportFormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
}
