package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the persistence and handler layers.
var (
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrForbidden           = errors.New("forbidden")
)

// NewNotFound reports a missing entity, e.g. "post not found".
func NewNotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

// NewConstraintViolation reports a rejected write: a duplicate unique field
// or a reference to a row that does not exist. The store is left unchanged.
func NewConstraintViolation(detail string) error {
	return fmt.Errorf("%s: %w", detail, ErrConstraintViolation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConstraintViolation(err error) bool {
	return errors.Is(err, ErrConstraintViolation)
}
