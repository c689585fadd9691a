// Package catalogdata bundles the default course catalog and the scheduling
// presets shipped with the planner. The data mirrors a small liberal-arts
// core curriculum and is loaded once at startup when no database catalog is
// configured.
package catalogdata

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/campushq/course-planner-api/internal/models"
)

//go:embed catalog.json
var catalogJSON []byte

//go:embed presets.json
var presetsJSON []byte

// Preset is a fixture worklist bundle: enrollments plus conflicts that are
// not derivable by the detectors (corequisite and capacity scenario data).
type Preset struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Courses     []string          `json:"courses"`
	Sections    []string          `json:"sections"`
	Conflicts   []models.Conflict `json:"conflicts"`
}

// Courses decodes the embedded catalog.
func Courses() ([]models.Course, error) {
	var payload struct {
		Courses []models.Course `json:"courses"`
	}
	if err := json.Unmarshal(catalogJSON, &payload); err != nil {
		return nil, fmt.Errorf("decode embedded catalog: %w", err)
	}
	for i := range payload.Courses {
		for j := range payload.Courses[i].Sections {
			payload.Courses[i].Sections[j].CourseID = payload.Courses[i].ID
		}
	}
	return payload.Courses, nil
}

// Presets decodes the embedded preset bundles.
func Presets() ([]Preset, error) {
	var payload struct {
		Presets []Preset `json:"presets"`
	}
	if err := json.Unmarshal(presetsJSON, &payload); err != nil {
		return nil, fmt.Errorf("decode embedded presets: %w", err)
	}
	return payload.Presets, nil
}
