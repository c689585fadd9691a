package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campushq/course-planner-api/internal/models"
)

func newTestCatalogService() *CatalogService {
	return NewCatalogService(newTestCatalog().courses, nil, nil)
}

func TestCatalogGet(t *testing.T) {
	svc := newTestCatalogService()

	course, err := svc.Get(context.Background(), "algebra")
	require.NoError(t, err)
	require.Equal(t, "MATH 101", course.Code)

	_, err = svc.Get(context.Background(), "no-such-course")
	require.Error(t, err)
}

func TestCatalogSearch(t *testing.T) {
	svc := newTestCatalogService()

	courses, pagination, err := svc.Search(context.Background(), models.CourseFilter{Query: "chem"})
	require.NoError(t, err)
	require.Len(t, courses, 2)
	require.Equal(t, 2, pagination.TotalCount)

	courses, _, err = svc.Search(context.Background(), models.CourseFilter{Query: "classical mechanics"})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "physics", courses[0].ID)
}

func TestCatalogSearchPagination(t *testing.T) {
	svc := newTestCatalogService()

	courses, pagination, err := svc.Search(context.Background(), models.CourseFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, courses, 2)
	require.Equal(t, 5, pagination.TotalCount)

	courses, _, err = svc.Search(context.Background(), models.CourseFilter{Page: 3, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, courses, 1)

	courses, _, err = svc.Search(context.Background(), models.CourseFilter{Page: 9, PageSize: 2})
	require.NoError(t, err)
	require.Empty(t, courses)
}

func TestRecommendSkipsEnrolled(t *testing.T) {
	svc := newTestCatalogService()

	recommendations := svc.Recommend(context.Background(), "chem", []string{"chemistry"})
	require.Len(t, recommendations, 1)
	require.Equal(t, "chem-lab", recommendations[0].ID)
}

func TestRecommendFallsBackToPrereqFreeCourses(t *testing.T) {
	svc := newTestCatalogService()

	recommendations := svc.Recommend(context.Background(), "", nil)
	require.NotEmpty(t, recommendations)
	for _, course := range recommendations {
		require.Empty(t, course.Prerequisites)
		require.Empty(t, course.PrerequisiteCourseIDs)
	}
}

func TestResolveRequirementReferencesUpgradesExactCodes(t *testing.T) {
	svc := newTestCatalogService()

	// CHEM 201's free-text "BIO 101" names a catalog code exactly, so it is
	// promoted to a structured reference.
	course, ok := svc.CourseByID("chemistry")
	require.True(t, ok)
	require.Equal(t, []string{"biology"}, course.PrerequisiteCourseIDs)
}

func TestResolveRequirementReferencesLeavesPartialListsAlone(t *testing.T) {
	courses := newTestCatalog().courses
	courses = append(courses, models.Course{
		ID:            "capstone",
		Code:          "CAP 400",
		Title:         "Capstone",
		Prerequisites: []string{"MATH 101", "departmental approval"},
	})

	svc := NewCatalogService(courses, nil, nil)
	course, ok := svc.CourseByID("capstone")
	require.True(t, ok)
	require.Empty(t, course.PrerequisiteCourseIDs)
}
