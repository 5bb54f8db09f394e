package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/colleague-student-api/internal/adapter"
	"github.com/noah-isme/colleague-student-api/internal/dto"
	"github.com/noah-isme/colleague-student-api/internal/models"
	"github.com/noah-isme/colleague-student-api/internal/pipeline"
)

type sectionPermissionService interface {
	Get(ctx context.Context, actor *models.JWTClaims, sectionID string) (*models.SectionPermission, error)
}

type textbookService interface {
	Assign(ctx context.Context, actor *models.JWTClaims, sectionID string, payload dto.SectionTextbookAssignment) ([]models.SectionTextbook, error)
}

// SectionHandler exposes section permissions and textbook assignment.
type SectionHandler struct {
	pipe        *pipeline.Pipeline
	permissions sectionPermissionService
	textbooks   textbookService
}

// NewSectionHandler builds the handler.
func NewSectionHandler(pipe *pipeline.Pipeline, permissions sectionPermissionService, textbooks textbookService) *SectionHandler {
	return &SectionHandler{pipe: pipe, permissions: permissions, textbooks: textbooks}
}

// Permissions godoc
// @Summary Get the petitions and faculty consents of a section
// @Tags Sections
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {object} dto.SectionPermission
// @Failure 403 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /sections/{id}/permissions [get]
func (h *SectionHandler) Permissions(c *gin.Context) {
	actor := claimsFromContext(c)
	pipeline.Get(h.pipe, c, sectionPermissionResource, c.Param("id"), func(ctx context.Context, id string, _ bool) (models.SectionPermission, error) {
		perm, err := h.permissions.Get(ctx, actor, id)
		if err != nil {
			return models.SectionPermission{}, err
		}
		return *perm, nil
	}, adapter.SectionPermission)
}

// AssignTextbooks godoc
// @Summary Replace the textbooks assigned to a section
// @Tags Sections
// @Accept json
// @Produce json
// @Param id path string true "Section ID"
// @Param payload body dto.SectionTextbookAssignment true "Textbooks"
// @Success 200 {object} dto.SectionTextbooks
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 403 {object} response.ErrorEnvelope
// @Router /sections/{id}/textbooks [put]
func (h *SectionHandler) AssignTextbooks(c *gin.Context) {
	actor := claimsFromContext(c)
	sectionID := c.Param("id")
	pipeline.Write(h.pipe, c, sectionTextbookResource, sectionID, func(ctx context.Context, payload dto.SectionTextbookAssignment) (dto.SectionTextbooks, error) {
		books, err := h.textbooks.Assign(ctx, actor, sectionID, payload)
		if err != nil {
			return dto.SectionTextbooks{}, err
		}
		return adapter.SectionTextbooks(sectionID, books), nil
	})
}
