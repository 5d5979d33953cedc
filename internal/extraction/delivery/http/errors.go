package http

import (
	"errors"
	"net/http"

	"univio/internal/extraction"
	pkgErrors "univio/pkg/errors"
)

// mapError translates use-case errors into HTTP errors. It returns nil for
// errors the domain does not know, which the caller reports as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, extraction.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")
	case errors.Is(err, extraction.ErrInsufficientSignal):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "not enough information to build a task, please fill the form manually")
	case errors.Is(err, extraction.ErrNoWeekday):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "no weekday found, please fill the schedule manually")
	case errors.Is(err, extraction.ErrUnknownTextType):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "text looks like neither a task nor a schedule")
	case errors.Is(err, extraction.ErrInvalidTime):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "extracted date or time is invalid")
	case errors.Is(err, extraction.ErrCalendarNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "calendar export is not configured")
	default:
		return nil
	}
}
