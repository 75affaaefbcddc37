package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrTooManyAttempts ends an interactive open after MaxPasswordAttempts
	// wrong passwords. It always wraps ErrWrongPassword as well.
	ErrTooManyAttempts = errors.New("too many wrong password attempts")

	// ErrCatalogUnavailable is returned by Catalog when no catalog
	// database is configured or it could not be opened.
	ErrCatalogUnavailable = errors.New("note catalog is unavailable")
)
