package http

import (
	"net/http"

	"emergency-triage/internal/knowledge"
	pkgErrors "emergency-triage/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch err {
	case knowledge.ErrEmptyQuery:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "query is required")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
