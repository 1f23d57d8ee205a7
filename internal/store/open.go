package store

import (
	"context"

	"github.com/dvergara2005/shopkeeper/internal/logging"
)

// Open returns a store backed by the sqlite file at path, plus a close
// function. If the medium cannot be opened or fails its probe, Open degrades
// to an in-memory store so callers never have to handle storage failures;
// the condition is logged and the session's data simply does not survive the
// process.
func Open(ctx context.Context, path string, log logging.Logger) (Store, func() error) {
	s, err := OpenSQLite(ctx, path)
	if err != nil {
		log.Warn(ctx, "storage unavailable, falling back to in-memory store", "path", path, "error", err)
		return NewMemoryStore(), func() error { return nil }
	}
	log.Debug(ctx, "store opened", "path", path)
	return s, s.Close
}
