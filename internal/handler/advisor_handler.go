package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/course-planner-api/internal/dto"
	"github.com/campushq/course-planner-api/internal/models"
	appErrors "github.com/campushq/course-planner-api/pkg/errors"
	"github.com/campushq/course-planner-api/pkg/response"
)

type advisorService interface {
	Messages() []models.AdvisorMessage
	Send(content string, persona models.AdvisorPersona) (models.AdvisorMessage, error)
}

// AdvisorHandler exposes the planning companion conversation.
type AdvisorHandler struct {
	service advisorService
}

// NewAdvisorHandler builds a new handler.
func NewAdvisorHandler(service advisorService) *AdvisorHandler {
	return &AdvisorHandler{service: service}
}

// Messages godoc
// @Summary List the advisor conversation
// @Tags Advisor
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /advisor/messages [get]
func (h *AdvisorHandler) Messages(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Messages(), nil)
}

// Send godoc
// @Summary Send a message to the advisor
// @Description Records the user message and schedules an asynchronous reply in the selected persona's voice.
// @Tags Advisor
// @Accept json
// @Produce json
// @Param payload body dto.AdvisorMessageRequest true "Message payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /advisor/messages [post]
func (h *AdvisorHandler) Send(c *gin.Context) {
	var req dto.AdvisorMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid message payload"))
		return
	}
	if req.Content == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "content must not be empty"))
		return
	}

	message, err := h.service.Send(req.Content, models.AdvisorPersona(req.Persona))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, message)
}
