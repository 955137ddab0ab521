package usecase

import "errors"

var (
	// ErrInvalidInput is returned before any store call when request values are missing or malformed
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized covers bad credentials and bad or mismatched tokens
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict is returned when a signup hits an existing account
	ErrConflict = errors.New("conflict")

	// ErrUserNotFound is returned by booking operations on a missing user document
	ErrUserNotFound = errors.New("user not found")

	// ErrUnknownAirport is returned when a flight path endpoint names no known airport
	ErrUnknownAirport = errors.New("unknown airport")
)
