package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushq/course-planner-api/internal/middleware"
	"github.com/campushq/course-planner-api/internal/models"
	"github.com/campushq/course-planner-api/pkg/response"
)

type catalogService interface {
	Get(ctx context.Context, id string) (*models.Course, error)
	Search(ctx context.Context, filter models.CourseFilter) ([]models.Course, *models.Pagination, error)
	Recommend(ctx context.Context, term string, enrolledCourseIDs []string) []models.Course
}

type worklistReader interface {
	Snapshot() *models.WorklistSnapshot
}

// CatalogHandler exposes course catalog endpoints.
type CatalogHandler struct {
	service  catalogService
	worklist worklistReader
}

// NewCatalogHandler builds a new handler.
func NewCatalogHandler(service catalogService, worklist worklistReader) *CatalogHandler {
	return &CatalogHandler{service: service, worklist: worklist}
}

// List godoc
// @Summary Search the course catalog
// @Tags Catalog
// @Produce json
// @Param q query string false "Search term matched against code, title, and description"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CatalogHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	courses, pagination, err := h.service.Search(c.Request.Context(), models.CourseFilter{
		Query:    c.Query("q"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, pagination, middleware.ExtractMeta(c))
}

// Get godoc
// @Summary Get a course by id
// @Tags Catalog
// @Produce json
// @Param id path string true "Course id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /courses/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	course, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course, nil)
}

// Recommendations godoc
// @Summary Recommend courses to add
// @Description Suggests catalog courses for a search term, skipping courses already enrolled in the worklist.
// @Tags Catalog
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} response.Envelope
// @Router /courses/recommendations [get]
func (h *CatalogHandler) Recommendations(c *gin.Context) {
	snapshot := h.worklist.Snapshot()
	courses := h.service.Recommend(c.Request.Context(), c.Query("q"), snapshot.Worklist.Courses)
	if courses == nil {
		courses = []models.Course{}
	}
	response.JSON(c, http.StatusOK, courses, nil)
}
