package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/colleague-student-api/internal/adapter"
	"github.com/noah-isme/colleague-student-api/internal/dto"
	"github.com/noah-isme/colleague-student-api/internal/models"
	"github.com/noah-isme/colleague-student-api/internal/pipeline"
)

type registrationService interface {
	GetOptions(ctx context.Context, actor *models.JWTClaims, studentID string) (*models.RegistrationOptions, error)
	QueryOptions(ctx context.Context, actor *models.JWTClaims, criteria dto.RegistrationOptionsQueryCriteria) ([]models.RegistrationOptions, error)
}

// RegistrationHandler exposes students' registration options.
type RegistrationHandler struct {
	pipe    *pipeline.Pipeline
	service registrationService
}

// NewRegistrationHandler builds the handler.
func NewRegistrationHandler(pipe *pipeline.Pipeline, service registrationService) *RegistrationHandler {
	return &RegistrationHandler{pipe: pipe, service: service}
}

// GetOptions godoc
// @Summary Get a student's registration options
// @Tags Registration
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.RegistrationOptions
// @Failure 403 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /students/{id}/registration-options [get]
func (h *RegistrationHandler) GetOptions(c *gin.Context) {
	actor := claimsFromContext(c)
	pipeline.Get(h.pipe, c, registrationResource, c.Param("id"), func(ctx context.Context, id string, _ bool) (models.RegistrationOptions, error) {
		opts, err := h.service.GetOptions(ctx, actor, id)
		if err != nil {
			return models.RegistrationOptions{}, err
		}
		return *opts, nil
	}, adapter.RegistrationOptions)
}

// QueryOptions godoc
// @Summary Query registration options for several students
// @Tags Registration
// @Accept json
// @Produce json
// @Param criteria body dto.RegistrationOptionsQueryCriteria true "Criteria"
// @Success 200 {array} dto.RegistrationOptions
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 403 {object} response.ErrorEnvelope
// @Router /qapi/registration-options [post]
func (h *RegistrationHandler) QueryOptions(c *gin.Context) {
	actor := claimsFromContext(c)
	pipeline.Query(h.pipe, c, registrationResource, func(ctx context.Context, criteria dto.RegistrationOptionsQueryCriteria, _ bool) ([]models.RegistrationOptions, error) {
		return h.service.QueryOptions(ctx, actor, criteria)
	}, adapter.RegistrationOptions)
}
