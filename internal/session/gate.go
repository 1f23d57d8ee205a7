// Package session exposes the read side of the active session. Every view
// consults the gate to decide what to render; it never mutates anything.
package session

import (
	"context"

	"github.com/dvergara2005/shopkeeper/internal/models"
	"github.com/dvergara2005/shopkeeper/internal/users"
)

// Gate answers "is someone logged in, and who" by delegating to the user
// directory.
type Gate struct {
	directory *users.Directory
}

func NewGate(d *users.Directory) *Gate {
	return &Gate{directory: d}
}

// IsActive reports whether any account currently holds the session.
func (g *Gate) IsActive(ctx context.Context) bool {
	_, ok := g.directory.FindActiveSession(ctx)
	return ok
}

// ActiveUser returns a snapshot of the logged-in account, if any.
func (g *Gate) ActiveUser(ctx context.Context) (models.User, bool) {
	return g.directory.FindActiveSession(ctx)
}
