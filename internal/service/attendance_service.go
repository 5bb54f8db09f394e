package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/colleague-student-api/internal/adapter"
	"github.com/noah-isme/colleague-student-api/internal/dto"
	"github.com/noah-isme/colleague-student-api/internal/models"
	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

type sectionAttendanceStore interface {
	ActiveCourseSections(ctx context.Context, sectionID string, courseSectionIDs []string) (map[string]string, error)
	Upsert(ctx context.Context, records []models.StudentAttendance) ([]models.StudentAttendance, error)
	List(ctx context.Context, filter models.StudentAttendanceFilter) ([]models.StudentAttendance, error)
}

type sectionFacultyChecker interface {
	IsFaculty(ctx context.Context, sectionID, personID string) (bool, error)
}

// AttendanceService coordinates section attendance workflows.
type AttendanceService struct {
	repo      sectionAttendanceStore
	sections  sectionFacultyChecker
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(repo sectionAttendanceStore, sections sectionFacultyChecker, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{repo: repo, sections: sections, validator: validate, logger: logger}
}

// UpdateSectionAttendance records attendance for one section meeting. Only
// faculty of the section may update it. Student course sections that do not
// belong to the section are reported back instead of failing the batch.
func (s *AttendanceService) UpdateSectionAttendance(ctx context.Context, actor *models.JWTClaims, payload dto.SectionAttendance) (*models.SectionAttendanceResult, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(payload); err != nil {
		return nil, validationError(err, "invalid section attendance payload")
	}
	if payload.MeetingInstance.MeetingDate.IsZero() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "meetingInstance.meetingDate is required")
	}
	if err := s.requireFaculty(ctx, actor, payload.SectionID); err != nil {
		return nil, err
	}

	entity := adapter.SectionAttendanceEntity(payload)
	ids := make([]string, 0, len(entity.StudentAttendances))
	for _, item := range entity.StudentAttendances {
		ids = append(ids, item.StudentCourseSectionID)
	}
	active, err := s.repo.ActiveCourseSections(ctx, entity.SectionID, ids)
	if err != nil {
		return nil, err
	}

	result := &models.SectionAttendanceResult{
		SectionID:                       entity.SectionID,
		Meeting:                         entity.Meeting,
		Updated:                         []models.StudentAttendance{},
		StudentCourseSectionsWithErrors: []string{},
	}
	writes := make([]models.StudentAttendance, 0, len(entity.StudentAttendances))
	for _, item := range entity.StudentAttendances {
		studentID, ok := active[item.StudentCourseSectionID]
		if !ok || (item.StudentID != "" && item.StudentID != studentID) {
			result.StudentCourseSectionsWithErrors = append(result.StudentCourseSectionsWithErrors, item.StudentCourseSectionID)
			continue
		}
		item.StudentID = studentID
		item.UpdatedBy = actor.PersonID
		writes = append(writes, item)
	}
	if len(result.StudentCourseSectionsWithErrors) > 0 {
		s.logger.Info("attendance rows rejected for section",
			zap.String("section_id", entity.SectionID),
			zap.Strings("student_course_sections", result.StudentCourseSectionsWithErrors))
	}

	if len(writes) > 0 {
		stored, err := s.repo.Upsert(ctx, writes)
		if err != nil {
			return nil, err
		}
		result.Updated = stored
	}
	return result, nil
}

// QueryStudentAttendances returns attendances of a section. Faculty of the
// section and administrators may read every student; students only themselves.
func (s *AttendanceService) QueryStudentAttendances(ctx context.Context, actor *models.JWTClaims, criteria dto.StudentAttendanceQueryCriteria) ([]models.StudentAttendance, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(criteria); err != nil {
		return nil, validationError(err, "invalid student attendance criteria")
	}

	filter := models.StudentAttendanceFilter{SectionID: criteria.SectionID, StudentIDs: criteria.StudentIDs}
	switch actor.Role {
	case models.RoleAdmin:
	case models.RoleStudent:
		for _, id := range filter.StudentIDs {
			if id != actor.PersonID {
				return nil, appErrors.Clone(appErrors.ErrForbidden, fmt.Sprintf("%s may not read attendance of %s", actor.PersonID, id))
			}
		}
		filter.StudentIDs = []string{actor.PersonID}
	default:
		if err := s.requireFaculty(ctx, actor, criteria.SectionID); err != nil {
			return nil, err
		}
	}

	return s.repo.List(ctx, filter)
}

func (s *AttendanceService) requireFaculty(ctx context.Context, actor *models.JWTClaims, sectionID string) error {
	ok, err := s.sections.IsFaculty(ctx, sectionID, actor.PersonID)
	if err != nil {
		return err
	}
	if !ok {
		return appErrors.Clone(appErrors.ErrForbidden, fmt.Sprintf("%s is not faculty of section %s", actor.PersonID, sectionID))
	}
	return nil
}
