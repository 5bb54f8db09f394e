package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/colleague-student-api/internal/middleware"
	"github.com/noah-isme/colleague-student-api/internal/models"
	"github.com/noah-isme/colleague-student-api/internal/pipeline"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	return middleware.CurrentActor(c)
}

// Resources served by the transactional handlers.
var (
	sectionAttendanceResource = pipeline.Resource{Name: "section-attendances", Label: "Section attendance", DataFaultStatus: http.StatusInternalServerError}
	studentAttendanceResource = pipeline.Resource{Name: "student-attendances", Label: "Student attendance"}
	registrationResource      = pipeline.Resource{Name: "registration-options", Label: "Registration options"}
	coursePlaceholderResource = pipeline.Resource{Name: "course-placeholders", Label: "Course placeholder"}
	sectionPermissionResource = pipeline.Resource{Name: "section-permissions", Label: "Section permissions", DataFaultStatus: http.StatusInternalServerError}
	sectionTextbookResource   = pipeline.Resource{Name: "section-textbooks", Label: "Section textbooks", DataFaultStatus: http.StatusInternalServerError}
)
