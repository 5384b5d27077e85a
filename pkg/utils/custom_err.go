package utils

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrValidation          = errors.New("invalid input")
	ErrDuplicateSlug       = errors.New("slug already in use")
	ErrDuplicateUsername   = errors.New("username already in use")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDatabaseUnavailable = errors.New("database unavailable")
	ErrDatabaseError       = errors.New("database error")
)
