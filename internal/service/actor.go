package service

import (
	"fmt"

	"github.com/noah-isme/colleague-student-api/internal/models"
	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

func requireActor(actor *models.JWTClaims) error {
	if actor == nil || actor.PersonID == "" {
		return appErrors.Clone(appErrors.ErrSessionExpired, "")
	}
	return nil
}

// requireSelfOrAdmin allows administrators and the person the data belongs to.
func requireSelfOrAdmin(actor *models.JWTClaims, personID, resource string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if actor.IsAdmin() || actor.PersonID == personID {
		return nil
	}
	return appErrors.Clone(appErrors.ErrForbidden, fmt.Sprintf("%s may not read %s of %s", actor.PersonID, resource, personID))
}

func validationError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}
