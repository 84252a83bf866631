package repository

import "errors"

var (
	// ErrNotFound means the referenced id is absent from its collection.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means an insert would reuse an existing id or username.
	ErrDuplicate = errors.New("record already exists")
	// ErrConflict means a status transition lost a compare-and-set, e.g.
	// taking a job that is no longer OPEN.
	ErrConflict = errors.New("record in conflicting state")
	// ErrNoSession means the operation requires an authenticated session.
	ErrNoSession = errors.New("no active session")
)
