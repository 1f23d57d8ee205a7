// Package cli provides the interactive shopkeeper storefront client.
//
// It wires configuration, the local key-value store, and the domain services
// (catalog, cart, user directory, profile images, people list) into an
// interactive REPL. The command set the user sees depends on the session
// state: anonymous visitors can browse, fill a cart, register, log in or
// recover a password; a logged-in user additionally manages their profile;
// the admin account also edits products, deletes accounts and maintains the
// remote people list.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
