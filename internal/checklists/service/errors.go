package service

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	ErrValidation     = errors.New("validation_error")
	ErrAuthentication = errors.New("invalid_credentials")
	ErrInvalidToken   = errors.New("invalid_token")
	ErrNotFound       = errors.New("not_found")
	ErrMalformedID    = errors.New("invalid_id")
)

// ValidationError lists every rejected input field with the reason it was
// rejected. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
