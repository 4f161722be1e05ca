package service

import (
	"time"

	"github.com/phrazzld/apiary-api/internal/domain"
)

func parseDate(field, value string) (time.Time, error) {
	t, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be a valid date", err)
	}
	return t, nil
}

func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// checkDateRange returns ErrInvalidDateRange when end is before start.
func checkDateRange(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return ErrInvalidDateRange
	}
	return nil
}
