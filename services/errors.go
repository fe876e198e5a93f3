package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested entity id does not exist.
var ErrNotFound = errors.New("not found")

// InvalidReferenceError reports a parent id that does not resolve.
type InvalidReferenceError struct {
	Field string
	ID    uint
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("Invalid %s: %d", e.Field, e.ID)
}

func invalidReference(field string, id uint) error {
	return &InvalidReferenceError{Field: field, ID: id}
}
