package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrDuplicateEvent indicates a webhook event with the same external id was already stored
	ErrDuplicateEvent = errors.New("duplicate event")

	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")
)
