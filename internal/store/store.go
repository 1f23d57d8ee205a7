// Package store implements the persistent string-keyed store every
// shopkeeper component reads and writes through.
//
// Collections are persisted as whole documents: a mutation serializes the
// entire collection and rewrites it under one key. Concurrent writers are
// resolved last-writer-wins; there is no locking and no version token. This
// mirrors the storage model of the original single-user app and is an
// accepted limitation, not an oversight.
package store

import "context"

// Well-known keys. The layout is wire-compatible with the original app's
// local storage.
const (
	KeyUsers = "usuarios"
	KeyCart  = "cart"

	profileImagePrefix = "profileImage_"
)

// ProfileImageKey returns the store key holding the profile image blob for
// the given account email.
func ProfileImageKey(email string) string {
	return profileImagePrefix + email
}

// Store is a persistent key-value store. Get returns (nil, nil) when the key
// is absent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error

	// Update runs fn against a handle that groups the writes into one
	// durable step where the medium supports it (the sqlite store wraps fn
	// in a transaction; the in-memory fallback applies writes directly).
	Update(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}
