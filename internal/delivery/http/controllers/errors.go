package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"roboticsclub/internal/delivery/http/helpers"
	"roboticsclub/internal/domain"
)

// writeDomainError maps domain sentinel errors onto HTTP status codes and
// stable error codes. Anything unmapped is a 500 and gets logged.
func writeDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
	// Admission rejections are all 400s with distinct codes so clients can
	// show precise messages without parsing prose.
	case errors.Is(err, domain.ErrRegistrationClosed):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeRegistrationClosed, err.Error())
	case errors.Is(err, domain.ErrCapacityExceeded):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeRegistrationFull, err.Error())
	case errors.Is(err, domain.ErrPaymentMethodMismatch):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodePaymentMethodMismatch, err.Error())
	case errors.Is(err, domain.ErrDuplicateRegistration):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeAlreadyRegistered, err.Error())
	case errors.Is(err, domain.ErrDuplicateSlug), errors.Is(err, domain.ErrDuplicateStudentID):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid credentials")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}
