package handler

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/campushq/course-planner-api/internal/dto"
	"github.com/campushq/course-planner-api/internal/models"
	"github.com/campushq/course-planner-api/internal/service"
	appErrors "github.com/campushq/course-planner-api/pkg/errors"
	"github.com/campushq/course-planner-api/pkg/response"
)

type worklistManager interface {
	Snapshot() *models.WorklistSnapshot
	AddOrUpdateEnrollment(req service.EnrollmentRequest) (*models.WorklistSnapshot, error)
	RemoveEnrollment(courseID string) *models.WorklistSnapshot
	ActiveConflicts(resolvedIDs []string) []models.Conflict
	AlternativeSections(courseID string) []models.Section
	Reset()
}

type metricsRecorder interface {
	RecordEnrollmentOperation(operation string)
	RecordConflicts(kind string, count int)
}

// WorklistHandler exposes the worklist, its conflicts, and the resolution
// marks. Resolution marks are presentation state only: they hide conflicts
// from the listing but never feed back into detection.
type WorklistHandler struct {
	manager worklistManager
	metrics metricsRecorder

	mu       sync.Mutex
	resolved map[string]bool
}

// NewWorklistHandler builds a new handler.
func NewWorklistHandler(manager worklistManager, metrics metricsRecorder) *WorklistHandler {
	return &WorklistHandler{manager: manager, metrics: metrics, resolved: make(map[string]bool)}
}

// Get godoc
// @Summary Get the current worklist snapshot
// @Tags Worklist
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /worklist [get]
func (h *WorklistHandler) Get(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.manager.Snapshot(), nil)
}

// AddEnrollment godoc
// @Summary Enroll a course or swap its section
// @Tags Worklist
// @Accept json
// @Produce json
// @Param payload body dto.EnrollmentRequest true "Enrollment payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /worklist/enrollments [post]
func (h *WorklistHandler) AddEnrollment(c *gin.Context) {
	var req dto.EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid enrollment payload"))
		return
	}
	snapshot, err := h.manager.AddOrUpdateEnrollment(service.EnrollmentRequest{
		CourseID:  req.CourseID,
		SectionID: req.SectionID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.RecordEnrollmentOperation("add")
		h.recordConflictCounts(snapshot.Conflicts)
	}
	response.JSON(c, http.StatusOK, snapshot, nil)
}

// RemoveEnrollment godoc
// @Summary Remove a course from the worklist
// @Tags Worklist
// @Produce json
// @Param courseId path string true "Course id"
// @Success 200 {object} response.Envelope
// @Router /worklist/enrollments/{courseId} [delete]
func (h *WorklistHandler) RemoveEnrollment(c *gin.Context) {
	snapshot := h.manager.RemoveEnrollment(c.Param("courseId"))
	if h.metrics != nil {
		h.metrics.RecordEnrollmentOperation("remove")
	}
	response.JSON(c, http.StatusOK, snapshot, nil)
}

// Conflicts godoc
// @Summary List schedule conflicts
// @Description Returns active conflicts by default. Pass resolved=true to list the conflicts marked resolved instead.
// @Tags Worklist
// @Produce json
// @Param resolved query bool false "List resolved conflicts instead of active ones"
// @Success 200 {object} response.Envelope
// @Router /worklist/conflicts [get]
func (h *WorklistHandler) Conflicts(c *gin.Context) {
	resolvedIDs := h.resolvedIDs()

	if c.Query("resolved") == "true" {
		marked := make(map[string]bool, len(resolvedIDs))
		for _, id := range resolvedIDs {
			marked[id] = true
		}
		conflicts := []models.Conflict{}
		for _, conflict := range h.manager.Snapshot().Conflicts {
			if marked[conflict.ID] {
				conflicts = append(conflicts, conflict)
			}
		}
		response.JSON(c, http.StatusOK, conflicts, nil)
		return
	}

	conflicts := h.manager.ActiveConflicts(resolvedIDs)
	if conflicts == nil {
		conflicts = []models.Conflict{}
	}
	response.JSON(c, http.StatusOK, conflicts, nil)
}

// Resolutions godoc
// @Summary Mark conflicts resolved or reopen them
// @Tags Worklist
// @Accept json
// @Produce json
// @Param payload body dto.ResolutionRequest true "Resolution payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /worklist/conflicts/resolutions [post]
func (h *WorklistHandler) Resolutions(c *gin.Context) {
	var req dto.ResolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid resolution payload"))
		return
	}
	if len(req.ConflictIDs) == 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "conflictIds must not be empty"))
		return
	}

	h.mu.Lock()
	for _, id := range req.ConflictIDs {
		if req.Resolved {
			h.resolved[id] = true
		} else {
			delete(h.resolved, id)
		}
	}
	h.mu.Unlock()

	response.JSON(c, http.StatusOK, h.manager.ActiveConflicts(h.resolvedIDs()), nil)
}

// Alternatives godoc
// @Summary List conflict-free alternative sections
// @Description Returns the sections of an enrolled course that would not collide with the rest of the schedule.
// @Tags Worklist
// @Produce json
// @Param courseId path string true "Course id"
// @Success 200 {object} response.Envelope
// @Router /worklist/alternatives/{courseId} [get]
func (h *WorklistHandler) Alternatives(c *gin.Context) {
	sections := h.manager.AlternativeSections(c.Param("courseId"))
	if sections == nil {
		sections = []models.Section{}
	}
	response.JSON(c, http.StatusOK, sections, nil)
}

// Reset godoc
// @Summary Clear the worklist
// @Tags Worklist
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /worklist/reset [post]
func (h *WorklistHandler) Reset(c *gin.Context) {
	h.manager.Reset()

	h.mu.Lock()
	h.resolved = make(map[string]bool)
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.RecordEnrollmentOperation("reset")
	}
	response.JSON(c, http.StatusOK, h.manager.Snapshot(), nil)
}

func (h *WorklistHandler) resolvedIDs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	ids := make([]string, 0, len(h.resolved))
	for id := range h.resolved {
		ids = append(ids, id)
	}
	return ids
}

func (h *WorklistHandler) recordConflictCounts(conflicts []models.Conflict) {
	counts := make(map[string]int)
	for _, conflict := range conflicts {
		counts[string(conflict.Kind)]++
	}
	for kind, count := range counts {
		h.metrics.RecordConflicts(kind, count)
	}
}
