package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/campushq/course-planner-api/internal/models"
	appErrors "github.com/campushq/course-planner-api/pkg/errors"
)

const maxRecommendations = 5

// CatalogService serves the static course catalog: lookups, text search,
// and lightweight recommendations. The catalog is loaded once and never
// mutated afterwards, so reads need no locking.
type CatalogService struct {
	courses []models.Course
	byID    map[string]*models.Course
	cache   *CacheService
	logger  *zap.Logger
}

// NewCatalogService indexes the catalog and resolves free-text requirement
// strings into structured course-id references where the text unambiguously
// names a catalog course. Text that cannot be resolved is kept as-is for
// the detector's best-effort fallback.
func NewCatalogService(courses []models.Course, cache *CacheService, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &CatalogService{
		courses: courses,
		byID:    make(map[string]*models.Course, len(courses)),
		cache:   cache,
		logger:  logger,
	}
	for i := range s.courses {
		s.byID[s.courses[i].ID] = &s.courses[i]
	}
	s.resolveRequirementReferences()
	return s
}

// CourseByID returns the catalog course with the given id.
func (s *CatalogService) CourseByID(id string) (*models.Course, bool) {
	course, ok := s.byID[id]
	return course, ok
}

// Courses returns the full catalog.
func (s *CatalogService) Courses() []models.Course {
	return s.courses
}

// Get returns one course or a typed not-found error for the HTTP surface.
func (s *CatalogService) Get(_ context.Context, id string) (*models.Course, error) {
	course, ok := s.byID[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return course, nil
}

// Search filters the catalog by a case-insensitive match on code, title, or
// description and paginates the result.
func (s *CatalogService) Search(ctx context.Context, filter models.CourseFilter) ([]models.Course, *models.Pagination, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}

	cacheKey := fmt.Sprintf("catalog:search:%s:%d:%d", strings.ToLower(filter.Query), page, size)
	type searchPayload struct {
		Courses []models.Course   `json:"courses"`
		Paging  models.Pagination `json:"paging"`
	}
	var cached searchPayload
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return cached.Courses, &cached.Paging, nil
	}

	matched := s.filter(filter.Query)
	total := len(matched)
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	result := matched[start:end]
	pagination := &models.Pagination{Page: page, PageSize: size, TotalCount: total}

	_ = s.cache.Set(ctx, cacheKey, searchPayload{Courses: result, Paging: *pagination}, 0)
	return result, pagination, nil
}

// Recommend suggests up to five catalog courses for a search term, skipping
// already-enrolled ones. An empty or unmatched term falls back to courses
// without prerequisites, the easiest additions to any schedule.
func (s *CatalogService) Recommend(_ context.Context, term string, enrolledCourseIDs []string) []models.Course {
	enrolled := make(map[string]bool, len(enrolledCourseIDs))
	for _, id := range enrolledCourseIDs {
		enrolled[id] = true
	}

	var recommendations []models.Course
	for _, course := range s.filter(term) {
		if !enrolled[course.ID] {
			recommendations = append(recommendations, course)
		}
	}

	if len(recommendations) == 0 || strings.TrimSpace(term) == "" {
		recommendations = recommendations[:0]
		for _, course := range s.courses {
			if !enrolled[course.ID] && len(course.Prerequisites) == 0 && len(course.PrerequisiteCourseIDs) == 0 {
				recommendations = append(recommendations, course)
			}
		}
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

func (s *CatalogService) filter(query string) []models.Course {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.courses
	}
	var matched []models.Course
	for _, course := range s.courses {
		if strings.Contains(strings.ToLower(course.Code), query) ||
			strings.Contains(strings.ToLower(course.Title), query) ||
			strings.Contains(strings.ToLower(course.Description), query) {
			matched = append(matched, course)
		}
	}
	return matched
}

// resolveRequirementReferences upgrades free-text prerequisite and
// corequisite strings into explicit course-id references when the text
// matches exactly one catalog course code.
func (s *CatalogService) resolveRequirementReferences() {
	for i := range s.courses {
		course := &s.courses[i]
		if len(course.PrerequisiteCourseIDs) == 0 {
			course.PrerequisiteCourseIDs = s.resolveAll(course.Prerequisites)
		}
		if len(course.CorequisiteCourseIDs) == 0 {
			course.CorequisiteCourseIDs = s.resolveAll(course.Corequisites)
		}
	}
}

// resolveAll maps references to course ids only when every entry resolves;
// a partially-resolvable list stays on the text path so no requirement is
// silently dropped by the structured fast path.
func (s *CatalogService) resolveAll(references []string) []string {
	if len(references) == 0 {
		return nil
	}
	ids := make([]string, 0, len(references))
	for _, reference := range references {
		reference = strings.TrimSpace(reference)
		resolved := ""
		for j := range s.courses {
			if s.courses[j].Code == reference {
				resolved = s.courses[j].ID
				break
			}
		}
		if resolved == "" {
			return nil
		}
		ids = append(ids, resolved)
	}
	return ids
}
