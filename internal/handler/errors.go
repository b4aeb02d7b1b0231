package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopkit/shopkit/internal/handler/dto"
	"github.com/shopkit/shopkit/internal/service"
)

// serviceStatus is the single mapping table from service error kind to HTTP
// status and client-facing message. Handlers must route every service error
// through writeServiceError so the mapping stays uniform.
var serviceStatus = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrDuplicateUser, http.StatusBadRequest, "User already exists"},
	{service.ErrUserNotFound, http.StatusBadRequest, "User not found"},
	{service.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
}

// writeServiceError maps a service error to an HTTP response.
// Validation errors are 400 with itemized field errors; unrecognized errors
// are logged and reported as a generic 500 without leaking internal detail.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Message: "Validation failed",
			Errors:  verr.Fields,
		})
		return
	}

	for _, m := range serviceStatus {
		if errors.Is(err, m.err) {
			writeJSON(w, m.status, dto.ErrorResponse{Message: m.message})
			return
		}
	}

	logger.Error("internal_error", "error", err)
	writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
}
