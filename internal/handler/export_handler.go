package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushq/course-planner-api/internal/models"
	"github.com/campushq/course-planner-api/internal/service"
	"github.com/campushq/course-planner-api/pkg/response"
)

type exportService interface {
	Render(snapshot *models.WorklistSnapshot, format string) ([]byte, string, error)
}

// ExportHandler serves schedule downloads.
type ExportHandler struct {
	service  exportService
	worklist worklistReader
}

// NewExportHandler builds a new handler.
func NewExportHandler(service exportService, worklist worklistReader) *ExportHandler {
	return &ExportHandler{service: service, worklist: worklist}
}

// Download godoc
// @Summary Export the current schedule
// @Tags Export
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "Export format: csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /worklist/export [get]
func (h *ExportHandler) Download(c *gin.Context) {
	format := c.DefaultQuery("format", service.ExportFormatCSV)

	data, contentType, err := h.service.Render(h.worklist.Snapshot(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("schedule-%s.%s", time.Now().UTC().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
