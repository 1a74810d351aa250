package http

import (
	"net/http"

	"emergency-triage/internal/triage"
	pkgErrors "emergency-triage/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case triage.ErrTradeNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "trade not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
