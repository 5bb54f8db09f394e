package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/colleague-student-api/internal/adapter"
	"github.com/noah-isme/colleague-student-api/internal/dto"
	"github.com/noah-isme/colleague-student-api/internal/models"
	"github.com/noah-isme/colleague-student-api/internal/pipeline"
)

type coursePlaceholderService interface {
	Get(ctx context.Context, id string, bypass bool) (*models.CoursePlaceholder, error)
	Query(ctx context.Context, criteria dto.CoursePlaceholderQueryCriteria, bypass bool) ([]models.CoursePlaceholder, error)
}

// CoursePlaceholderHandler exposes course placeholders.
type CoursePlaceholderHandler struct {
	pipe    *pipeline.Pipeline
	service coursePlaceholderService
}

// NewCoursePlaceholderHandler builds the handler.
func NewCoursePlaceholderHandler(pipe *pipeline.Pipeline, service coursePlaceholderService) *CoursePlaceholderHandler {
	return &CoursePlaceholderHandler{pipe: pipe, service: service}
}

// Get godoc
// @Summary Get a course placeholder
// @Tags Course placeholders
// @Produce json
// @Param id path string true "Course placeholder ID"
// @Success 200 {object} dto.CoursePlaceholder
// @Failure 404 {object} response.ErrorEnvelope
// @Router /course-placeholders/{id} [get]
func (h *CoursePlaceholderHandler) Get(c *gin.Context) {
	pipeline.Get(h.pipe, c, coursePlaceholderResource, c.Param("id"), func(ctx context.Context, id string, bypass bool) (models.CoursePlaceholder, error) {
		row, err := h.service.Get(ctx, id, bypass)
		if err != nil {
			return models.CoursePlaceholder{}, err
		}
		return *row, nil
	}, adapter.CoursePlaceholder)
}

// Query godoc
// @Summary Query course placeholders by id
// @Tags Course placeholders
// @Accept json
// @Produce json
// @Param criteria body dto.CoursePlaceholderQueryCriteria true "Criteria"
// @Success 200 {array} dto.CoursePlaceholder
// @Failure 400 {object} response.ErrorEnvelope
// @Router /qapi/course-placeholders [post]
func (h *CoursePlaceholderHandler) Query(c *gin.Context) {
	pipeline.Query(h.pipe, c, coursePlaceholderResource, h.service.Query, adapter.CoursePlaceholder)
}
