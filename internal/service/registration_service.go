package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/colleague-student-api/internal/dto"
	"github.com/noah-isme/colleague-student-api/internal/models"
	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

type registrationOptionsReader interface {
	ListOptions(ctx context.Context, studentIDs []string) ([]models.RegistrationOptions, error)
}

// RegistrationService exposes students' registration options.
type RegistrationService struct {
	repo      registrationOptionsReader
	validator *validator.Validate
}

// NewRegistrationService constructs the service.
func NewRegistrationService(repo registrationOptionsReader, validate *validator.Validate) *RegistrationService {
	if validate == nil {
		validate = validator.New()
	}
	return &RegistrationService{repo: repo, validator: validate}
}

// GetOptions returns one student's options. Students may only read their own.
func (s *RegistrationService) GetOptions(ctx context.Context, actor *models.JWTClaims, studentID string) (*models.RegistrationOptions, error) {
	studentID = strings.TrimSpace(studentID)
	if err := requireSelfOrAdmin(actor, studentID, "registration options"); err != nil {
		return nil, err
	}
	options, err := s.repo.ListOptions(ctx, []string{studentID})
	if err != nil {
		return nil, err
	}
	for i := range options {
		if options[i].StudentID == studentID {
			return &options[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no registration options for %s", studentID))
}

// QueryOptions returns options for every requested student the actor may read.
func (s *RegistrationService) QueryOptions(ctx context.Context, actor *models.JWTClaims, criteria dto.RegistrationOptionsQueryCriteria) ([]models.RegistrationOptions, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(criteria); err != nil {
		return nil, validationError(err, "invalid registration options criteria")
	}

	ids := make([]string, 0, len(criteria.StudentIDs))
	seen := make(map[string]struct{}, len(criteria.StudentIDs))
	for _, id := range criteria.StudentIDs {
		id = strings.TrimSpace(id)
		if _, dup := seen[id]; dup {
			continue
		}
		if err := requireSelfOrAdmin(actor, id, "registration options"); err != nil {
			return nil, err
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return s.repo.ListOptions(ctx, ids)
}
