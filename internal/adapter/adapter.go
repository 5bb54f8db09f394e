// Package adapter holds the entity to DTO projections. Each function maps one
// entity type to its wire type and fails when the entity cannot be
// represented, so collection endpoints can skip the offending item.
package adapter

import (
	"fmt"
	"strings"

	"github.com/noah-isme/colleague-student-api/internal/models"
	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

// ErrMissingCode is returned for reference entities without a code.
var ErrMissingCode = appErrors.Clone(appErrors.ErrMapping, "reference entity has no code")

func checkCode(kind string, ref models.ReferenceCode) error {
	if strings.TrimSpace(ref.Code) == "" {
		return fmt.Errorf("%s %q: %w", kind, ref.Description, ErrMissingCode)
	}
	return nil
}

func missing(kind, field string) error {
	return appErrors.Clone(appErrors.ErrMapping, fmt.Sprintf("%s has no %s", kind, field))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
