package repository

import "errors"

var (
	// ErrNotFound is returned when the addressed document or row does not exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned by create-only inserts hitting an existing key
	ErrAlreadyExists = errors.New("already exists")

	// ErrTransient wraps timeouts and connectivity failures of the store
	ErrTransient = errors.New("transient store failure")
)
