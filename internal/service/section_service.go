package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/colleague-student-api/internal/adapter"
	"github.com/noah-isme/colleague-student-api/internal/dto"
	"github.com/noah-isme/colleague-student-api/internal/models"
	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

type sectionStore interface {
	Exists(ctx context.Context, sectionID string) (bool, error)
	IsFaculty(ctx context.Context, sectionID, personID string) (bool, error)
	ListPetitions(ctx context.Context, sectionID string) ([]models.SectionPetition, error)
	ReplaceTextbooks(ctx context.Context, sectionID string, books []models.SectionTextbook) ([]models.SectionTextbook, error)
}

// sectionGuard resolves a section and checks the actor teaches it. Writes
// pass allowAdmin=false so only the section's faculty may change it.
func sectionGuard(ctx context.Context, repo sectionStore, actor *models.JWTClaims, sectionID string, allowAdmin bool) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	exists, err := repo.Exists(ctx, sectionID)
	if err != nil {
		return err
	}
	if !exists {
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("section %s not found", sectionID))
	}
	if allowAdmin && actor.IsAdmin() {
		return nil
	}
	ok, err := repo.IsFaculty(ctx, sectionID, actor.PersonID)
	if err != nil {
		return err
	}
	if !ok {
		return appErrors.Clone(appErrors.ErrForbidden, fmt.Sprintf("%s is not faculty of section %s", actor.PersonID, sectionID))
	}
	return nil
}

// SectionPermissionService reads the petitions and faculty consents of a section.
type SectionPermissionService struct {
	repo sectionStore
}

// NewSectionPermissionService constructs the service.
func NewSectionPermissionService(repo sectionStore) *SectionPermissionService {
	return &SectionPermissionService{repo: repo}
}

// Get returns the section's permissions. Only its faculty and administrators
// may read them.
func (s *SectionPermissionService) Get(ctx context.Context, actor *models.JWTClaims, sectionID string) (*models.SectionPermission, error) {
	sectionID = strings.TrimSpace(sectionID)
	if err := sectionGuard(ctx, s.repo, actor, sectionID, true); err != nil {
		return nil, err
	}
	petitions, err := s.repo.ListPetitions(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	perm := &models.SectionPermission{
		SectionID:        sectionID,
		StudentPetitions: []models.SectionPetition{},
		FacultyConsents:  []models.SectionPetition{},
	}
	for _, p := range petitions {
		switch p.Kind {
		case models.PetitionKindFacultyConsent:
			perm.FacultyConsents = append(perm.FacultyConsents, p)
		default:
			perm.StudentPetitions = append(perm.StudentPetitions, p)
		}
	}
	return perm, nil
}

// TextbookService assigns textbooks to sections.
type TextbookService struct {
	repo      sectionStore
	validator *validator.Validate
}

// NewTextbookService constructs the service.
func NewTextbookService(repo sectionStore, validate *validator.Validate) *TextbookService {
	if validate == nil {
		validate = validator.New()
	}
	return &TextbookService{repo: repo, validator: validate}
}

// Assign replaces the section's textbook list. Only its faculty may do so.
func (s *TextbookService) Assign(ctx context.Context, actor *models.JWTClaims, sectionID string, payload dto.SectionTextbookAssignment) ([]models.SectionTextbook, error) {
	sectionID = strings.TrimSpace(sectionID)
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(payload); err != nil {
		return nil, validationError(err, "invalid textbook assignment")
	}
	books := adapter.SectionTextbookEntities(sectionID, actor.PersonID, payload)
	seen := make(map[string]struct{}, len(books))
	for _, book := range books {
		if !book.Requirement.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("requirement status %q is not supported", book.Requirement))
		}
		if _, dup := seen[book.BookID]; dup {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("book %s is listed more than once", book.BookID))
		}
		seen[book.BookID] = struct{}{}
	}
	if err := sectionGuard(ctx, s.repo, actor, sectionID, false); err != nil {
		return nil, err
	}
	return s.repo.ReplaceTextbooks(ctx, sectionID, books)
}
