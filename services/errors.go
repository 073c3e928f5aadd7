package services

import "errors"

// Error categories surfaced by the service layer. Controllers map these to
// HTTP status codes; services wrap them with a snake_case detail message,
// so callers match with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid_input")
	ErrNotFound     = errors.New("not_found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)
