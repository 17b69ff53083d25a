package booking

import "fmt"

// ValidationError is a request-shape failure caught before any store
// access.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s must not be empty", e.Field)
}

func NewValidationError(field string) error {
	return &ValidationError{Field: field}
}
