package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

// translateDBError maps driver errors onto the fault taxonomy so callers can
// classify them without knowing about PostgreSQL.
func translateDBError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, op+": no rows")
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "42501":
			return appErrors.Wrap(err, appErrors.ErrForbidden.Code, appErrors.ErrForbidden.Status, op+": insufficient privilege")
		case pqErr.Code.Class() == "28":
			return appErrors.Wrap(err, appErrors.ErrSessionExpired.Code, appErrors.ErrSessionExpired.Status, appErrors.SessionExpiredMessage)
		case pqErr.Code.Class() == "22":
			return appErrors.Wrap(err, appErrors.ErrDataRead.Code, appErrors.ErrDataRead.Status, op+": data exception")
		}
	}

	// database/sql and sqlx report scan mismatches as plain errors.
	msg := err.Error()
	if strings.Contains(msg, "sql: Scan error") || strings.Contains(msg, "missing destination name") {
		return appErrors.Wrap(err, appErrors.ErrDataRead.Code, appErrors.ErrDataRead.Status, op+": unreadable row")
	}

	return fmt.Errorf("%s: %w", op, err)
}
