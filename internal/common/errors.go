// Package common defines shared sentinel errors used across the shopkeeper
// library and the CLI. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Storage medium errors. Components degrade to an in-memory fallback
	// instead of surfacing this to the end user.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Corrupt serialized collection. Readers degrade to an empty collection.
	ErrMalformedRecord = errors.New("malformed record")

	// Registration conflict: the email is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)
