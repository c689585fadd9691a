package dto

// EnrollmentRequest adds a course to the worklist or swaps its section.
type EnrollmentRequest struct {
	CourseID  string `json:"courseId" validate:"required"`
	SectionID string `json:"sectionId" validate:"required"`
}

// ResolutionRequest marks conflict ids as resolved or reopens them. The
// marks only affect what the conflicts endpoint returns; detection state is
// untouched.
type ResolutionRequest struct {
	ConflictIDs []string `json:"conflictIds" validate:"required,min=1"`
	Resolved    bool     `json:"resolved"`
}
