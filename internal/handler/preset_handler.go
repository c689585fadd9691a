package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/course-planner-api/internal/catalogdata"
	"github.com/campushq/course-planner-api/internal/models"
	"github.com/campushq/course-planner-api/pkg/response"
)

type presetService interface {
	List() []catalogdata.Preset
	Load(id string) (*models.WorklistSnapshot, error)
}

// PresetHandler exposes the bundled scheduling scenarios.
type PresetHandler struct {
	service presetService
}

// NewPresetHandler builds a new handler.
func NewPresetHandler(service presetService) *PresetHandler {
	return &PresetHandler{service: service}
}

// List godoc
// @Summary List available presets
// @Tags Presets
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /presets [get]
func (h *PresetHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.List(), nil)
}

// Load godoc
// @Summary Load a preset into the worklist
// @Description Replaces the current enrollments with the preset's and injects its fixture conflicts.
// @Tags Presets
// @Produce json
// @Param id path string true "Preset id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /presets/{id}/load [post]
func (h *PresetHandler) Load(c *gin.Context) {
	snapshot, err := h.service.Load(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, snapshot, nil)
}
