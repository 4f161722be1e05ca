package store

import (
	"errors"
	"fmt"
)

// Errors returned by every store implementation.
var (
	// ErrNotFound means no row has the requested ID. Each entity has its own
	// error wrapping it, so callers can match either.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate means a unique constraint rejected the write.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity means a foreign key, check or not-null constraint
	// rejected the write.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed means a transaction could not begin or commit.
	ErrTransactionFailed = errors.New("transaction failed")

	ErrApiaryNotFound     = fmt.Errorf("%w: apiary", ErrNotFound)
	ErrHiveNotFound       = fmt.Errorf("%w: hive", ErrNotFound)
	ErrInspectionNotFound = fmt.Errorf("%w: inspection", ErrNotFound)
	ErrTaskNotFound       = fmt.Errorf("%w: task", ErrNotFound)
	ErrFeedingNotFound    = fmt.Errorf("%w: feeding", ErrNotFound)
	ErrHarvestNotFound    = fmt.Errorf("%w: harvest", ErrNotFound)
	ErrTreatmentNotFound  = fmt.Errorf("%w: treatment", ErrNotFound)
)

// IsNotFoundError reports whether err is ErrNotFound or an entity-specific
// not found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err wraps ErrDuplicate.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError records which entity and operation a database failure came from.
type StoreError struct {
	Entity    string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err with the entity and operation that produced it.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
