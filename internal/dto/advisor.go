package dto

// AdvisorMessageRequest posts a user message to the planning companion.
type AdvisorMessageRequest struct {
	Content string `json:"content" validate:"required"`
	Persona string `json:"persona"`
}
