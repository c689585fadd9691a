package service

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campushq/course-planner-api/internal/models"
	appErrors "github.com/campushq/course-planner-api/pkg/errors"
)

// EnrollmentRequest describes an add-or-update enrollment payload.
type EnrollmentRequest struct {
	CourseID  string `json:"courseId" validate:"required"`
	SectionID string `json:"sectionId" validate:"required"`
}

// WorklistConfig seeds the managed worklist.
type WorklistConfig struct {
	Name string
}

// WorklistService owns the worklist and its derived calendar-event and
// conflict sets, and keeps the three mutually consistent: after every
// mutation the event set is regenerated from the full worklist and the
// conflict set is recomputed from the full event/enrollment state. Injected
// fixture conflicts pass through recomputation untouched while their courses
// stay enrolled.
//
// The manager is the sole owner of this state; callers only read snapshots
// or invoke its operations.
type WorklistService struct {
	catalog   courseLookup
	detector  *ConflictDetector
	validator *validator.Validate
	logger    *zap.Logger

	mu        sync.RWMutex
	worklist  models.Worklist
	events    []models.CalendarEvent
	conflicts []models.Conflict
	fixtures  []models.Conflict
}

// NewWorklistService constructs the manager with an empty worklist.
func NewWorklistService(catalog courseLookup, detector *ConflictDetector, validate *validator.Validate, logger *zap.Logger, cfg WorklistConfig) *WorklistService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if detector == nil {
		detector = NewConflictDetector(catalog, logger)
	}
	name := cfg.Name
	if name == "" {
		name = "My Worklist"
	}
	return &WorklistService{
		catalog:   catalog,
		detector:  detector,
		validator: validate,
		logger:    logger,
		worklist: models.Worklist{
			ID:       uuid.NewString(),
			Name:     name,
			Courses:  []string{},
			Sections: []string{},
		},
	}
}

// AddOrUpdateEnrollment enrolls the course in the given section, or swaps
// the section when the course is already enrolled. Unknown course or
// section ids leave the state untouched: the catalog is static and trusted,
// so referential misses degrade silently rather than fail.
func (s *WorklistService) AddOrUpdateEnrollment(req EnrollmentRequest) (*models.WorklistSnapshot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.catalog.CourseByID(req.CourseID)
	if ok {
		_, ok = course.SectionByID(req.SectionID)
	}
	if !ok {
		s.logger.Debug("enrollment ignored, unknown course or section",
			zap.String("course_id", req.CourseID),
			zap.String("section_id", req.SectionID))
		return s.snapshotLocked(), nil
	}

	if _, enrolled := s.worklist.SectionFor(req.CourseID); enrolled {
		for i, id := range s.worklist.Courses {
			if id == req.CourseID {
				s.worklist.Sections[i] = req.SectionID
			}
		}
	} else {
		s.worklist.Courses = append(s.worklist.Courses, req.CourseID)
		s.worklist.Sections = append(s.worklist.Sections, req.SectionID)
	}

	s.recomputeLocked()
	return s.snapshotLocked(), nil
}

// RemoveEnrollment drops the course, its section choice, its calendar
// events, and every conflict referencing it. Removing a course that is not
// enrolled is a no-op.
func (s *WorklistService) RemoveEnrollment(courseID string) *models.WorklistSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses := s.worklist.Courses[:0]
	sections := s.worklist.Sections[:0]
	for i, id := range s.worklist.Courses {
		if id == courseID {
			continue
		}
		courses = append(courses, id)
		sections = append(sections, s.worklist.Sections[i])
	}
	s.worklist.Courses = courses
	s.worklist.Sections = sections

	kept := s.fixtures[:0]
	for _, fixture := range s.fixtures {
		if !fixture.Involves(courseID) {
			kept = append(kept, fixture)
		}
	}
	s.fixtures = kept

	s.recomputeLocked()
	return s.snapshotLocked()
}

// Snapshot returns a deep copy of the current {worklist, events, conflicts}
// triple for the presentation layer.
func (s *WorklistService) Snapshot() *models.WorklistSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// ActiveConflicts returns the current conflict set, excluding ids the
// caller has marked resolved. Resolution marking is presentation-local
// state and never feeds back into detection.
func (s *WorklistService) ActiveConflicts(resolvedIDs []string) []models.Conflict {
	resolved := make(map[string]bool, len(resolvedIDs))
	for _, id := range resolvedIDs {
		resolved[id] = true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]models.Conflict, 0, len(s.conflicts))
	for _, conflict := range s.conflicts {
		if !resolved[conflict.ID] {
			active = append(active, conflict)
		}
	}
	return active
}

// AlternativeSections returns the sections of an enrolled course that would
// produce no time conflict against the rest of the current schedule. The
// manager only exposes the detector primitive; picking an alternative stays
// a caller-driven decision.
func (s *WorklistService) AlternativeSections(courseID string) []models.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.catalog.CourseByID(courseID)
	if !ok {
		return nil
	}

	var others []models.CalendarEvent
	for _, event := range s.events {
		if event.CourseID != courseID {
			others = append(others, event)
		}
	}

	currentSection, _ := s.worklist.SectionFor(courseID)
	var alternatives []models.Section
	for _, section := range course.Sections {
		if section.ID == currentSection {
			continue
		}
		trial := append(append([]models.CalendarEvent(nil), others...), ProjectEvents(s.catalog, courseID, section.ID)...)
		if len(s.detector.DetectTimeConflicts(trial, nil)) == 0 {
			alternatives = append(alternatives, section)
		}
	}
	return alternatives
}

// InjectConflicts adds fixture conflicts that the detectors do not derive
// (capacity presets and other scenario data). They are opaque to the core
// and survive recomputation until a course they reference is removed.
func (s *WorklistService) InjectConflicts(fixtures []models.Conflict) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fixtures = append(s.fixtures, fixtures...)
	s.recomputeLocked()
}

// Reset clears all enrollments, events, conflicts, and fixtures.
func (s *WorklistService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.worklist.Courses = []string{}
	s.worklist.Sections = []string{}
	s.fixtures = nil
	s.recomputeLocked()
}

// LoadPreset replaces the current enrollment with a fixture bundle.
// Enrollments with unknown course or section ids are skipped silently,
// matching the add path.
func (s *WorklistService) LoadPreset(name string, courses, sections []string, fixtures []models.Conflict) (*models.WorklistSnapshot, error) {
	if len(courses) != len(sections) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "preset courses and sections must be index-aligned")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.worklist.Courses = []string{}
	s.worklist.Sections = []string{}
	if name != "" {
		s.worklist.Name = name
	}
	for i, courseID := range courses {
		course, ok := s.catalog.CourseByID(courseID)
		if !ok {
			continue
		}
		if _, ok := course.SectionByID(sections[i]); !ok {
			continue
		}
		if s.worklist.Contains(courseID) {
			continue
		}
		s.worklist.Courses = append(s.worklist.Courses, courseID)
		s.worklist.Sections = append(s.worklist.Sections, sections[i])
	}
	s.fixtures = append([]models.Conflict(nil), fixtures...)

	s.recomputeLocked()
	return s.snapshotLocked(), nil
}

// recomputeLocked regenerates the event set from the full worklist and the
// conflict set from the full event/enrollment state. Incremental detection
// is only ever an optimization elsewhere; the owned state always reflects a
// full recomputation, so stale conflicts cannot survive a section swap.
func (s *WorklistService) recomputeLocked() {
	s.events = ProjectWorklist(s.catalog, s.worklist)

	enrolled := make(map[string]bool, len(s.worklist.Courses))
	for _, id := range s.worklist.Courses {
		enrolled[id] = true
	}
	fixtures := make([]models.Conflict, 0, len(s.fixtures))
	for _, fixture := range s.fixtures {
		dangling := false
		for _, courseID := range fixture.CourseIDs {
			if !enrolled[courseID] {
				dangling = true
				break
			}
		}
		if !dangling {
			fixtures = append(fixtures, fixture)
		}
	}
	s.fixtures = fixtures

	s.conflicts = s.detector.DetectAll(s.events, s.worklist.Courses, fixtures)
}

func (s *WorklistService) snapshotLocked() *models.WorklistSnapshot {
	snapshot := &models.WorklistSnapshot{
		Worklist:  s.worklist.Clone(),
		Events:    append([]models.CalendarEvent(nil), s.events...),
		Conflicts: append([]models.Conflict(nil), s.conflicts...),
	}
	if snapshot.Events == nil {
		snapshot.Events = []models.CalendarEvent{}
	}
	if snapshot.Conflicts == nil {
		snapshot.Conflicts = []models.Conflict{}
	}
	return snapshot
}
