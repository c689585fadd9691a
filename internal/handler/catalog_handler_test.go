package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/campushq/course-planner-api/internal/models"
	appErrors "github.com/campushq/course-planner-api/pkg/errors"
)

type catalogServiceMock struct {
	courses       []models.Course
	capturedQuery string
}

func (m *catalogServiceMock) Get(_ context.Context, id string) (*models.Course, error) {
	for i := range m.courses {
		if m.courses[i].ID == id {
			return &m.courses[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
}

func (m *catalogServiceMock) Search(_ context.Context, filter models.CourseFilter) ([]models.Course, *models.Pagination, error) {
	m.capturedQuery = filter.Query
	return m.courses, &models.Pagination{Page: 1, PageSize: 20, TotalCount: len(m.courses)}, nil
}

func (m *catalogServiceMock) Recommend(_ context.Context, term string, enrolledCourseIDs []string) []models.Course {
	m.capturedQuery = term
	enrolled := make(map[string]bool, len(enrolledCourseIDs))
	for _, id := range enrolledCourseIDs {
		enrolled[id] = true
	}
	var out []models.Course
	for _, course := range m.courses {
		if !enrolled[course.ID] {
			out = append(out, course)
		}
	}
	return out
}

type worklistReaderMock struct {
	snapshot *models.WorklistSnapshot
}

func (m *worklistReaderMock) Snapshot() *models.WorklistSnapshot {
	return m.snapshot
}

func newCatalogRouter(mock *catalogServiceMock, reader *worklistReaderMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewCatalogHandler(mock, reader)
	r := gin.New()
	r.GET("/courses", handler.List)
	r.GET("/courses/recommendations", handler.Recommendations)
	r.GET("/courses/:id", handler.Get)
	return r
}

func TestCatalogHandlerList(t *testing.T) {
	mock := &catalogServiceMock{courses: []models.Course{{ID: "algebra", Code: "MATH 101"}}}
	router := newCatalogRouter(mock, &worklistReaderMock{snapshot: &models.WorklistSnapshot{}})

	w := performRequest(t, router, http.MethodGet, "/courses?q=math", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "math", mock.capturedQuery)

	var body struct {
		Data       []models.Course    `json:"data"`
		Pagination *models.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, 1, body.Pagination.TotalCount)
}

func TestCatalogHandlerGetNotFound(t *testing.T) {
	router := newCatalogRouter(&catalogServiceMock{}, &worklistReaderMock{snapshot: &models.WorklistSnapshot{}})

	w := performRequest(t, router, http.MethodGet, "/courses/ghost", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandlerRecommendationsSkipEnrolled(t *testing.T) {
	mock := &catalogServiceMock{courses: []models.Course{
		{ID: "algebra", Code: "MATH 101"},
		{ID: "biology", Code: "BIO 101"},
	}}
	reader := &worklistReaderMock{snapshot: &models.WorklistSnapshot{
		Worklist: models.Worklist{Courses: []string{"algebra"}},
	}}
	router := newCatalogRouter(mock, reader)

	w := performRequest(t, router, http.MethodGet, "/courses/recommendations?q=intro", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []models.Course `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, "biology", body.Data[0].ID)
}
