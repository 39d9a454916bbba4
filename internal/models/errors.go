package models

import "errors"

// Storage level errors shared by repositories.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record violates a unique constraint")

	// ErrReferenceNotFound is returned when a foreign key points at a missing row.
	ErrReferenceNotFound = errors.New("referenced record not found")
)
