package pipeline

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap/zapcore"

	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

type fault struct {
	response   *appErrors.Error
	level      zapcore.Level
	logMessage string
}

// classify maps a backend or local error onto the response the client sees.
// Messages are built from the resource label and id only; the raw error text
// goes to the log.
func classify(res Resource, id string, err error) fault {
	label := res.label()
	lower := strings.ToLower(label)

	switch {
	case errors.Is(err, appErrors.ErrSessionExpired):
		return fault{
			response:   appErrors.New(appErrors.ErrSessionExpired.Code, http.StatusUnauthorized, appErrors.SessionExpiredMessage),
			level:      zapcore.WarnLevel,
			logMessage: "backend session expired",
		}
	case errors.Is(err, appErrors.ErrUnauthorized):
		return fault{
			response:   appErrors.New(appErrors.ErrUnauthorized.Code, http.StatusUnauthorized, "Authentication is required."),
			level:      zapcore.WarnLevel,
			logMessage: "request not authenticated",
		}
	case errors.Is(err, appErrors.ErrForbidden):
		return fault{
			response:   appErrors.New(appErrors.ErrForbidden.Code, http.StatusForbidden, fmt.Sprintf("Access to %s is forbidden.", lower)),
			level:      zapcore.WarnLevel,
			logMessage: "permission denied",
		}
	case errors.Is(err, appErrors.ErrNotFound), errors.Is(err, sql.ErrNoRows):
		msg := fmt.Sprintf("%s not found.", label)
		if id != "" {
			msg = fmt.Sprintf("%s not found for id '%s'.", label, id)
		}
		return fault{
			response:   appErrors.New(appErrors.ErrNotFound.Code, http.StatusNotFound, msg),
			level:      zapcore.InfoLevel,
			logMessage: "resource not found",
		}
	case errors.Is(err, appErrors.ErrDataRead), errors.Is(err, appErrors.ErrMapping):
		return fault{
			response:   appErrors.New(appErrors.ErrDataRead.Code, res.dataFaultStatus(), fmt.Sprintf("An error occurred while reading %s data.", lower)),
			level:      zapcore.ErrorLevel,
			logMessage: "backend data could not be read",
		}
	case errors.Is(err, appErrors.ErrValidation):
		return fault{
			response:   appErrors.New(appErrors.ErrValidation.Code, http.StatusBadRequest, appErrors.FromError(err).Message),
			level:      zapcore.InfoLevel,
			logMessage: "request rejected by validation",
		}
	case errors.Is(err, appErrors.ErrNotSupported):
		return fault{
			response:   appErrors.New(appErrors.ErrNotSupported.Code, http.StatusMethodNotAllowed, appErrors.ErrNotSupported.Message),
			level:      zapcore.InfoLevel,
			logMessage: "operation not supported",
		}
	case errors.Is(err, appErrors.ErrNotAcceptable):
		return fault{
			response:   appErrors.New(appErrors.ErrNotAcceptable.Code, http.StatusNotAcceptable, appErrors.FromError(err).Message),
			level:      zapcore.InfoLevel,
			logMessage: "media type not acceptable",
		}
	default:
		return fault{
			response:   appErrors.New(appErrors.ErrBadRequest.Code, appErrors.ErrBadRequest.Status, fmt.Sprintf("Unable to process the %s request.", lower)),
			level:      zapcore.ErrorLevel,
			logMessage: "unhandled request fault",
		}
	}
}
