package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/colleague-student-api/internal/dto"
	"github.com/noah-isme/colleague-student-api/internal/models"
)

type coursePlaceholderStore interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.CoursePlaceholder, error)
	FindByID(ctx context.Context, id string) (*models.CoursePlaceholder, error)
}

type placeholderCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

const coursePlaceholderKeyPrefix = "course-placeholder:"

// CoursePlaceholderService reads course placeholders, caching them per id.
type CoursePlaceholderService struct {
	repo      coursePlaceholderStore
	cache     placeholderCache
	ttl       time.Duration
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCoursePlaceholderService constructs the service. cache may be nil.
func NewCoursePlaceholderService(repo coursePlaceholderStore, cache placeholderCache, ttl time.Duration, validate *validator.Validate, logger *zap.Logger) *CoursePlaceholderService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CoursePlaceholderService{repo: repo, cache: cache, ttl: ttl, validator: validate, logger: logger}
}

// Get returns one placeholder. bypass skips the cache read.
func (s *CoursePlaceholderService) Get(ctx context.Context, id string, bypass bool) (*models.CoursePlaceholder, error) {
	id = strings.TrimSpace(id)
	if cached, ok := s.fromCache(ctx, id, bypass); ok {
		return cached, nil
	}
	placeholder, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store(ctx, *placeholder)
	return placeholder, nil
}

// Query returns the placeholders matching criteria. Unknown ids are omitted.
func (s *CoursePlaceholderService) Query(ctx context.Context, criteria dto.CoursePlaceholderQueryCriteria, bypass bool) ([]models.CoursePlaceholder, error) {
	if err := s.validator.Struct(criteria); err != nil {
		return nil, validationError(err, "invalid course placeholder criteria")
	}

	found := make(map[string]models.CoursePlaceholder, len(criteria.IDs))
	seen := make(map[string]struct{}, len(criteria.IDs))
	var missing []string
	for _, raw := range criteria.IDs {
		id := strings.TrimSpace(raw)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if cached, ok := s.fromCache(ctx, id, bypass); ok {
			found[id] = *cached
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		rows, err := s.repo.FindByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			found[row.ID] = row
			s.store(ctx, row)
		}
	}

	out := make([]models.CoursePlaceholder, 0, len(found))
	emitted := make(map[string]struct{}, len(found))
	for _, raw := range criteria.IDs {
		id := strings.TrimSpace(raw)
		row, ok := found[id]
		if _, dup := emitted[id]; !ok || dup {
			continue
		}
		emitted[id] = struct{}{}
		out = append(out, row)
	}
	return out, nil
}

func (s *CoursePlaceholderService) fromCache(ctx context.Context, id string, bypass bool) (*models.CoursePlaceholder, bool) {
	if s.cache == nil || bypass {
		return nil, false
	}
	var cached models.CoursePlaceholder
	hit, err := s.cache.Get(ctx, coursePlaceholderKeyPrefix+id, &cached)
	if err != nil || !hit {
		return nil, false
	}
	return &cached, true
}

func (s *CoursePlaceholderService) store(ctx context.Context, placeholder models.CoursePlaceholder) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, coursePlaceholderKeyPrefix+placeholder.ID, placeholder, s.ttl); err != nil {
		s.logger.Debug("course placeholder cache refresh failed", zap.String("id", placeholder.ID), zap.Error(err))
	}
}
