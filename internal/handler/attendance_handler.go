package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/colleague-student-api/internal/adapter"
	"github.com/noah-isme/colleague-student-api/internal/dto"
	"github.com/noah-isme/colleague-student-api/internal/models"
	"github.com/noah-isme/colleague-student-api/internal/pipeline"
)

type attendanceService interface {
	UpdateSectionAttendance(ctx context.Context, actor *models.JWTClaims, payload dto.SectionAttendance) (*models.SectionAttendanceResult, error)
	QueryStudentAttendances(ctx context.Context, actor *models.JWTClaims, criteria dto.StudentAttendanceQueryCriteria) ([]models.StudentAttendance, error)
}

// AttendanceHandler exposes section attendance endpoints.
type AttendanceHandler struct {
	pipe    *pipeline.Pipeline
	service attendanceService
}

// NewAttendanceHandler builds the handler.
func NewAttendanceHandler(pipe *pipeline.Pipeline, service attendanceService) *AttendanceHandler {
	return &AttendanceHandler{pipe: pipe, service: service}
}

// UpdateSectionAttendance godoc
// @Summary Record attendance for a section meeting
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body dto.SectionAttendance true "Section attendance"
// @Success 200 {object} dto.SectionAttendanceResponse
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 403 {object} response.ErrorEnvelope
// @Router /section-attendances [put]
func (h *AttendanceHandler) UpdateSectionAttendance(c *gin.Context) {
	actor := claimsFromContext(c)
	pipeline.Write(h.pipe, c, sectionAttendanceResource, "", func(ctx context.Context, payload dto.SectionAttendance) (dto.SectionAttendanceResponse, error) {
		result, err := h.service.UpdateSectionAttendance(ctx, actor, payload)
		if err != nil {
			return dto.SectionAttendanceResponse{}, err
		}
		return adapter.SectionAttendanceResponse(*result), nil
	})
}

// QueryStudentAttendances godoc
// @Summary Query student attendances of a section
// @Tags Attendance
// @Accept json
// @Produce json
// @Param criteria body dto.StudentAttendanceQueryCriteria true "Criteria"
// @Success 200 {array} dto.StudentAttendance
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 403 {object} response.ErrorEnvelope
// @Router /qapi/student-attendances [post]
func (h *AttendanceHandler) QueryStudentAttendances(c *gin.Context) {
	actor := claimsFromContext(c)
	pipeline.Query(h.pipe, c, studentAttendanceResource, func(ctx context.Context, criteria dto.StudentAttendanceQueryCriteria, _ bool) ([]models.StudentAttendance, error) {
		return h.service.QueryStudentAttendances(ctx, actor, criteria)
	}, adapter.StudentAttendance)
}
