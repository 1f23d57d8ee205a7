// Package users manages the collection of registered accounts and the
// single active-session flag.
//
// The collection is persisted as one JSON document under the "usuarios"
// store key; every mutation rewrites the whole document (last-writer-wins,
// no concurrency token).
package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dvergara2005/shopkeeper/internal/common"
	"github.com/dvergara2005/shopkeeper/internal/logging"
	"github.com/dvergara2005/shopkeeper/internal/models"
	"github.com/dvergara2005/shopkeeper/internal/store"
)

// Directory owns the user collection. All lookups are linear scans with
// exact, case-sensitive matching; there is no lockout or rate limiting by
// design (this is a faithful port of a demo, not real authentication).
type Directory struct {
	store store.Store
	log   logging.Logger
}

func NewDirectory(s store.Store, log logging.Logger) *Directory {
	return &Directory{store: s, log: log}
}

// load reads and deserializes the full collection. It fails soft: a missing
// key or corrupt document yields an empty collection, and entries without an
// email are dropped.
func (d *Directory) load(ctx context.Context) []models.User {
	data, err := d.store.Get(ctx, store.KeyUsers)
	if err != nil {
		d.log.Warn(ctx, "reading user collection failed", "error", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var all []models.User
	if err := json.Unmarshal(data, &all); err != nil {
		d.log.Warn(ctx, "user collection is malformed, starting empty",
			"error", fmt.Errorf("%w: %w", common.ErrMalformedRecord, err))
		return nil
	}

	valid := all[:0]
	for _, u := range all {
		if u.Email == "" {
			continue
		}
		valid = append(valid, u)
	}
	return valid
}

func (d *Directory) persist(ctx context.Context, st store.Store, all []models.User) error {
	if all == nil {
		all = []models.User{}
	}
	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("marshal user collection: %w", err)
	}
	return st.Set(ctx, store.KeyUsers, data)
}

// ListAll returns every registered account in insertion order.
func (d *Directory) ListAll(ctx context.Context) []models.User {
	return d.load(ctx)
}

// EmailExists reports whether an account with the given email is registered.
func (d *Directory) EmailExists(ctx context.Context, email string) bool {
	for _, u := range d.load(ctx) {
		if u.Email == email {
			return true
		}
	}
	return false
}

// FindByCredentials returns the account matching both email and password
// exactly, or false when there is no match.
func (d *Directory) FindByCredentials(ctx context.Context, email, password string) (models.User, bool) {
	for _, u := range d.load(ctx) {
		if u.Email == email && u.Password == password {
			return u, true
		}
	}
	return models.User{}, false
}

// FindActiveSession returns the account currently marked active, if any.
func (d *Directory) FindActiveSession(ctx context.Context) (models.User, bool) {
	for _, u := range d.load(ctx) {
		if u.Active {
			return u, true
		}
	}
	return models.User{}, false
}

// SetActiveSession marks the account with the given email active and clears
// the flag on every other account within the same document rewrite, so at
// most one session is ever active. Returns common.ErrNotFound when no such
// account exists.
func (d *Directory) SetActiveSession(ctx context.Context, email string) error {
	all := d.load(ctx)

	found := false
	for i := range all {
		active := all[i].Email == email
		if active {
			found = true
		}
		all[i].Active = active
	}
	if !found {
		return fmt.Errorf("set active session %s: %w", email, common.ErrNotFound)
	}

	return d.persist(ctx, d.store, all)
}

// ClearActiveSession clears the active flag and reports whether a session
// was actually cleared.
func (d *Directory) ClearActiveSession(ctx context.Context) (bool, error) {
	all := d.load(ctx)

	cleared := false
	for i := range all {
		if all[i].Active {
			all[i].Active = false
			cleared = true
		}
	}
	if !cleared {
		return false, nil
	}

	return true, d.persist(ctx, d.store, all)
}

// Login authenticates with email and password and activates the session on
// success. A credentials miss is common.ErrNotFound; the caller decides how
// to word it.
func (d *Directory) Login(ctx context.Context, email, password string) (models.User, error) {
	u, ok := d.FindByCredentials(ctx, email, password)
	if !ok {
		return models.User{}, fmt.Errorf("login %s: %w", email, common.ErrNotFound)
	}
	if err := d.SetActiveSession(ctx, u.Email); err != nil {
		return models.User{}, err
	}
	u.Active = true
	return u, nil
}

// Register validates the input, rejects duplicate emails without mutating
// the directory, and appends the new account already logged in (the original
// app auto-logs-in on registration). The new session is exclusive.
func (d *Directory) Register(ctx context.Context, reg Registration) (models.User, error) {
	if problems := reg.problems(); len(problems) > 0 {
		return models.User{}, &ValidationError{Problems: problems}
	}

	all := d.load(ctx)
	for _, u := range all {
		if u.Email == reg.Email {
			return models.User{}, fmt.Errorf("register %s: %w", reg.Email, common.ErrDuplicateEmail)
		}
	}

	for i := range all {
		all[i].Active = false
	}
	user := models.User{Name: reg.Name, Email: reg.Email, Password: reg.Password, Active: true}
	all = append(all, user)

	if err := d.persist(ctx, d.store, all); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Update overwrites the name and email of the currently active account.
// Returns common.ErrNotFound when no session is active.
func (d *Directory) Update(ctx context.Context, patch ProfilePatch) (models.User, error) {
	if problems := patch.problems(); len(problems) > 0 {
		return models.User{}, &ValidationError{Problems: problems}
	}

	all := d.load(ctx)
	for i := range all {
		if !all[i].Active {
			continue
		}
		all[i].Name = patch.Name
		all[i].Email = patch.Email
		if err := d.persist(ctx, d.store, all); err != nil {
			return models.User{}, err
		}
		return all[i], nil
	}
	return models.User{}, fmt.Errorf("update profile: %w", common.ErrNotFound)
}

// Remove deletes the account with the given email. Deletion is keyed by
// email rather than list position, so a stale listing cannot delete the
// wrong record. The account's profile image is removed in the same batch,
// best-effort.
func (d *Directory) Remove(ctx context.Context, email string) error {
	all := d.load(ctx)

	kept := all[:0]
	for _, u := range all {
		if u.Email != email {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(all) {
		return fmt.Errorf("remove %s: %w", email, common.ErrNotFound)
	}

	return d.store.Update(ctx, func(ctx context.Context, st store.Store) error {
		if err := d.persist(ctx, st, kept); err != nil {
			return err
		}
		return st.Remove(ctx, store.ProfileImageKey(email))
	})
}

// RecoverPassword returns the stored password for a registered email.
// The original app displays it to the user verbatim; passwords are plaintext
// on purpose and this is no more secure than the rest of the demo.
func (d *Directory) RecoverPassword(ctx context.Context, email string) (string, error) {
	for _, u := range d.load(ctx) {
		if u.Email == email {
			return u.Password, nil
		}
	}
	return "", fmt.Errorf("recover %s: %w", email, common.ErrNotFound)
}
