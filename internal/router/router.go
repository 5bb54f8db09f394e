// Package router assembles the gin engine: global middleware, the reference
// and transactional resources, integration-model placeholders and the
// operational endpoints.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/colleague-student-api/internal/handler"
	"github.com/noah-isme/colleague-student-api/internal/middleware"
	"github.com/noah-isme/colleague-student-api/internal/models"
	"github.com/noah-isme/colleague-student-api/internal/pipeline"
	"github.com/noah-isme/colleague-student-api/internal/repository"
	"github.com/noah-isme/colleague-student-api/internal/service"
	"github.com/noah-isme/colleague-student-api/pkg/config"
	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
	"github.com/noah-isme/colleague-student-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/colleague-student-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/colleague-student-api/pkg/middleware/requestid"
	"github.com/noah-isme/colleague-student-api/pkg/middleware/version"
)

// Dependencies are the collaborators the routes are built from.
type Dependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	DB        *sqlx.DB
	Reference repository.ReferenceOptions
	Metrics   *service.MetricsService
	Auth      middleware.TokenValidator
	Audit     middleware.AuditRecorder
	Readiness map[string]handler.Pinger

	Attendance         *service.AttendanceService
	Registration       *service.RegistrationService
	CoursePlaceholders *service.CoursePlaceholderService
	SectionPermissions *service.SectionPermissionService
	Textbooks          *service.TextbookService

	// Placeholders optionally supplies items for integration-model resources
	// keyed by resource name.
	Placeholders map[string]handler.EedmLister
}

// PlaceholderResources lists the integration-model resources that have no
// data in this system.
var PlaceholderResources = []pipeline.Resource{
	{Name: "administrative-periods", Label: "Administrative period"},
	{Name: "instructional-delivery-methods", Label: "Instructional delivery method"},
	{Name: "student-tags", Label: "Student tag"},
	{Name: "student-admission-decisions", Label: "Student admission decision"},
}

// New builds the engine.
func New(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	if cfg.Log.Access {
		r.Use(logger.GinMiddleware(log))
	}
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	ops := handler.NewMetricsHandler(deps.Metrics, deps.Readiness, log)
	r.GET("/health", ops.Health)
	r.GET("/ready", ops.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", ops.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	pipe := pipeline.New(log, pipeline.WithFaultRecorder(deps.Metrics))
	negotiator := version.NewNegotiator(cfg.Versions.MediaVendor, cfg.Versions.DefaultVersion, version.WithRejectHandler(pipe.Reject))

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.CacheDirective(), negotiator.Require(), middleware.JWT(deps.Auth, pipe.Reject))

	for _, reg := range referenceHandlers(pipe, deps.DB, deps.Reference) {
		reg.Register(api)
	}
	for _, res := range PlaceholderResources {
		handler.NewPlaceholderHandler(pipe, res, deps.Placeholders[res.Name]).Register(api)
	}

	writers := middleware.RequireRoles(pipe.Reject, models.RoleFaculty)

	attendance := handler.NewAttendanceHandler(pipe, deps.Attendance)
	api.PUT("/section-attendances", writers, middleware.Audit(deps.Audit, log, models.AuditActionAttendanceUpdate, "section_attendances"), attendance.UpdateSectionAttendance)
	api.POST("/qapi/student-attendances", attendance.QueryStudentAttendances)

	registration := handler.NewRegistrationHandler(pipe, deps.Registration)
	api.GET("/students/:id/registration-options", registration.GetOptions)
	api.POST("/qapi/registration-options", registration.QueryOptions)

	placeholders := handler.NewCoursePlaceholderHandler(pipe, deps.CoursePlaceholders)
	api.GET("/course-placeholders/:id", placeholders.Get)
	api.POST("/qapi/course-placeholders", placeholders.Query)

	sections := handler.NewSectionHandler(pipe, deps.SectionPermissions, deps.Textbooks)
	api.GET("/sections/:id/permissions", sections.Permissions)
	api.PUT("/sections/:id/textbooks", writers, middleware.Audit(deps.Audit, log, models.AuditActionTextbookAssign, "section_textbooks"), sections.AssignTextbooks)

	r.NoRoute(func(c *gin.Context) {
		pipe.Reject(c, appErrors.Clone(appErrors.ErrNotFound, "route not found"))
	})

	return r
}
