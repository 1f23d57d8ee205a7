// Package profile stores per-account profile images. Each image is an
// opaque encoded blob (a data URI in the original app) keyed by the account
// email, independent from the user record itself.
package profile

import (
	"context"

	"github.com/dvergara2005/shopkeeper/internal/logging"
	"github.com/dvergara2005/shopkeeper/internal/store"
)

type Images struct {
	store store.Store
	log   logging.Logger
}

func NewImages(s store.Store, log logging.Logger) *Images {
	return &Images{store: s, log: log}
}

// Get returns the stored image blob for the email. The second return value
// is false when no image was ever set; callers render their own placeholder.
func (i *Images) Get(ctx context.Context, email string) (string, bool) {
	data, err := i.store.Get(ctx, store.ProfileImageKey(email))
	if err != nil {
		i.log.Warn(ctx, "reading profile image failed", "email", email, "error", err)
		return "", false
	}
	if data == nil {
		return "", false
	}
	return string(data), true
}

// Set stores the image blob for the email. No check is made that the email
// belongs to a registered account; the directory removes the image when the
// account goes away, best-effort.
func (i *Images) Set(ctx context.Context, email, blob string) error {
	return i.store.Set(ctx, store.ProfileImageKey(email), []byte(blob))
}

// Remove deletes the image for the email, if any.
func (i *Images) Remove(ctx context.Context, email string) error {
	return i.store.Remove(ctx, store.ProfileImageKey(email))
}
