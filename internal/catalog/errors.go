package catalog

import (
	"errors"
	"fmt"

	"github.com/snnyvrz/shelfshare/internal/validation"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrConflict         = errors.New("conflict")
	ErrDependentsExist  = errors.New("dependents exist")
)

// ValidationError carries every field violation, in rule order, together
// with the rejected candidate.
type ValidationError[T any] struct {
	Errors    []validation.FieldError
	Candidate T
}

func (e *ValidationError[T]) Error() string {
	return fmt.Sprintf("validation failed: %d field error(s)", len(e.Errors))
}

func (e *ValidationError[T]) Is(target error) bool {
	return target == ErrValidationFailed
}

// ConflictError reports a write that would duplicate an existing record.
type ConflictError[T any] struct {
	Existing T
}

func (e *ConflictError[T]) Error() string {
	return "record already exists"
}

func (e *ConflictError[T]) Is(target error) bool {
	return target == ErrConflict
}

// DependentsError reports a delete blocked by records that still
// reference Entity.
type DependentsError[E, D any] struct {
	Entity     E
	Dependents []D
}

func (e *DependentsError[E, D]) Error() string {
	return fmt.Sprintf("delete blocked by %d dependent record(s)", len(e.Dependents))
}

func (e *DependentsError[E, D]) Is(target error) bool {
	return target == ErrDependentsExist
}
