package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dvergara2005/shopkeeper/internal/users"
)

// Profile shows the active account's details.
func (a *App) Profile(ctx context.Context) error {
	u, ok := a.gate.ActiveUser(ctx)
	if !ok {
		printlnFn("Not logged in")
		return nil
	}

	printlnFn("Name:  " + u.Name)
	printlnFn("Email: " + u.Email)
	if img, ok := a.images.Get(ctx, u.Email); ok {
		printlnFn(fmt.Sprintf("Image: %d bytes", len(img)))
	} else {
		printlnFn("Image: none")
	}
	return nil
}

// EditProfile prompts for a new name and email for the active account.
// An empty answer keeps the current value.
func (a *App) EditProfile(ctx context.Context) error {
	u, ok := a.gate.ActiveUser(ctx)
	if !ok {
		printlnFn("Not logged in")
		return nil
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Enter name [%s]", u.Name), os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		name = u.Name
	}

	email, err := getSimpleText(a.reader, fmt.Sprintf("Enter email [%s]", u.Email), os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		email = u.Email
	}

	updated, err := a.directory.Update(ctx, users.ProfilePatch{Name: name, Email: email})
	var ve *users.ValidationError
	if errors.As(err, &ve) {
		for _, p := range ve.Problems {
			printlnFn(p)
		}
		return err
	}
	if err != nil {
		return err
	}

	if updated.Email != u.Email {
		if img, ok := a.images.Get(ctx, u.Email); ok {
			if err := a.images.Set(ctx, updated.Email, img); err == nil {
				_ = a.images.Remove(ctx, u.Email)
			}
		}
	}

	printlnFn("Profile updated")
	return nil
}

// SetImage stores a profile image for the active account. The storefront
// keeps images as data URLs; here the user pastes the encoded payload.
func (a *App) SetImage(ctx context.Context) error {
	u, ok := a.gate.ActiveUser(ctx)
	if !ok {
		printlnFn("Not logged in")
		return nil
	}

	blob, err := getSimpleText(a.reader, "Paste image data", os.Stdout)
	if err != nil {
		return err
	}
	if blob == "" {
		printlnFn("Nothing to store")
		return nil
	}

	if err := a.images.Set(ctx, u.Email, blob); err != nil {
		return err
	}
	printlnFn("Image stored")
	return nil
}
