package models

import "time"

// AdvisorPersona selects the canned response voice for the advisor chat.
type AdvisorPersona string

// Supported personas.
const (
	PersonaAdvisor AdvisorPersona = "advisor"
	PersonaPeer    AdvisorPersona = "peer"
	PersonaExpert  AdvisorPersona = "expert"
)

// Valid reports whether the persona is one of the supported values.
func (p AdvisorPersona) Valid() bool {
	switch p {
	case PersonaAdvisor, PersonaPeer, PersonaExpert:
		return true
	}
	return false
}

// Label returns the human-readable role name used in chat copy.
func (p AdvisorPersona) Label() string {
	switch p {
	case PersonaPeer:
		return "peer mentor"
	case PersonaExpert:
		return "program expert"
	default:
		return "academic advisor"
	}
}

// AdvisorMessage is one entry in an advisor conversation.
type AdvisorMessage struct {
	ID        string         `json:"id"`
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	Persona   AdvisorPersona `json:"persona,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Message roles.
const (
	MessageRoleUser = "user"
	MessageRoleAI   = "ai"
)
