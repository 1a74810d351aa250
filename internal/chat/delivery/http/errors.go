package http

import (
	"errors"
	"net/http"

	"emergency-triage/internal/chat"
	pkgErrors "emergency-triage/pkg/errors"
)

var (
	errInvalidStep  = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid step")
	errInvalidTrade = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid detected_trade")
	errMissingID    = pkgErrors.NewHTTPError(http.StatusBadRequest, "session id is required")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "session not found")
	case errors.Is(err, chat.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "message is required")
	case errors.Is(err, chat.ErrMessageTooLong):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "message is too long")
	case errors.Is(err, chat.ErrUnknownCity):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "city is not served")
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// isClientError reports whether err is an expected domain error that does
// not deserve an error-level log line.
func isClientError(err error) bool {
	return errors.Is(err, chat.ErrSessionNotFound) ||
		errors.Is(err, chat.ErrEmptyMessage) ||
		errors.Is(err, chat.ErrMessageTooLong) ||
		errors.Is(err, chat.ErrUnknownCity)
}
