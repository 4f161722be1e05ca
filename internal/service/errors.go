package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/store"
)

// Sentinel errors returned by the services. The API layer maps them to
// HTTP status codes with errors.Is.
var (
	// ErrHiveNotInApiary indicates a hive referenced together with an apiary
	// belongs to a different apiary.
	ErrHiveNotInApiary = errors.New("hive does not belong to the specified apiary")

	// ErrHiveRequired indicates a hive record was submitted without a hive
	// while not applying to all hives.
	ErrHiveRequired = errors.New("hive ID is required when not applying to all hives")

	// ErrNoHivesInApiary indicates a fan-out was requested for an apiary
	// that has no hives.
	ErrNoHivesInApiary = errors.New("no hives found in the specified apiary")

	// ErrInvalidDateRange indicates an end date before the start date.
	ErrInvalidDateRange = errors.New("end date cannot be before start date")

	// ErrInvalidTaskStatus indicates an unknown task status name.
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// ServiceError wraps an unexpected failure with the operation that produced it.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError wraps err with operation context.
// Expected conditions (not found, rule violations, validation errors) are
// returned unchanged so callers can match them directly.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	if isExpected(err) {
		return err
	}
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

func isExpected(err error) bool {
	switch {
	case store.IsNotFoundError(err),
		errors.Is(err, ErrHiveNotInApiary),
		errors.Is(err, ErrHiveRequired),
		errors.Is(err, ErrNoHivesInApiary),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrInvalidTaskStatus),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDate):
		return true
	}
	return false
}
