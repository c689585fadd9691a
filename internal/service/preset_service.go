package service

import (
	"go.uber.org/zap"

	"github.com/campushq/course-planner-api/internal/catalogdata"
	"github.com/campushq/course-planner-api/internal/models"
	appErrors "github.com/campushq/course-planner-api/pkg/errors"
)

// PresetService exposes the bundled scheduling scenarios and loads them into
// the worklist.
type PresetService struct {
	presets  []catalogdata.Preset
	worklist *WorklistService
	logger   *zap.Logger
}

// NewPresetService wires the preset bundles to the worklist manager.
func NewPresetService(presets []catalogdata.Preset, worklist *WorklistService, logger *zap.Logger) *PresetService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PresetService{presets: presets, worklist: worklist, logger: logger}
}

// List returns the available presets.
func (s *PresetService) List() []catalogdata.Preset {
	return s.presets
}

// Load replaces the current worklist with the preset's enrollments and
// injects its fixture conflicts.
func (s *PresetService) Load(id string) (*models.WorklistSnapshot, error) {
	for _, preset := range s.presets {
		if preset.ID == id {
			s.logger.Info("loading preset", zap.String("preset_id", id), zap.String("name", preset.Name))
			return s.worklist.LoadPreset(preset.Name, preset.Courses, preset.Sections, preset.Conflicts)
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "preset not found")
}
