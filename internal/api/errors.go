package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/apiary-api/internal/api/shared"
	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/service"
	"github.com/phrazzld/apiary-api/internal/store"
)

// Messages for errors raised by the handlers themselves.
const (
	msgValidationFailed = "Validation failed"
	msgInvalidRequest   = "Invalid request format"
	msgUnexpected       = "An unexpected error occurred"
)

// notFoundMessages maps store not-found errors to their client message.
var notFoundMessages = []struct {
	err     error
	message string
}{
	{store.ErrApiaryNotFound, "Apiary not found"},
	{store.ErrHiveNotFound, "Hive not found"},
	{store.ErrInspectionNotFound, "Inspection not found"},
	{store.ErrTaskNotFound, "Task not found"},
	{store.ErrFeedingNotFound, "Feeding not found"},
	{store.ErrHarvestNotFound, "Harvest not found"},
	{store.ErrTreatmentNotFound, "Treatment not found"},
}

// badRequestMessages maps service rule violations to their client message.
var badRequestMessages = []struct {
	err     error
	message string
}{
	{service.ErrHiveNotInApiary, "Hive does not belong to the specified apiary"},
	{service.ErrHiveRequired, "Hive ID is required when not applying to all hives"},
	{service.ErrNoHivesInApiary, "No hives found in the specified apiary"},
	{service.ErrInvalidDateRange, "End date cannot be before start date"},
	{service.ErrInvalidTaskStatus, "Invalid task status"},
}

func isValidationError(err error) bool {
	var verrs validator.ValidationErrors
	var derr *domain.ValidationError
	return errors.As(err, &verrs) || errors.As(err, &derr) ||
		errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrInvalidDate)
}

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// exposing their types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case isValidationError(err), errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict
	}
	for _, m := range badRequestMessages {
		if errors.Is(err, m.err) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// GetSafeErrorMessage returns the client-facing message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}
	for _, m := range notFoundMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	for _, m := range badRequestMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	case isValidationError(err):
		return msgValidationFailed
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"
	}
	return msgUnexpected
}

// HandleAPIError writes the error response for err. fallback replaces the
// generic message of unexpected (5xx) errors when non-empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}

	var opts []shared.ResponseOption
	if fieldErrs := shared.FieldErrors(err); len(fieldErrs) > 0 && status == http.StatusBadRequest {
		opts = append(opts, shared.WithFieldErrors(fieldErrs))
	}
	// Constraint violations are logged at WARN.
	if status == http.StatusConflict || errors.Is(err, store.ErrInvalidEntity) {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
