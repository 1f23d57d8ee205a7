// Package models defines the records persisted by the shopkeeper store.
package models

// User is a registered storefront account.
//
// Email is the identity key and is matched case-sensitively, exactly as
// stored. Password is kept in plaintext: this is a faithful port of a demo
// storefront and real authentication is explicitly out of scope.
//
// The JSON field names (including the historical "sesion" spelling) are kept
// wire-compatible with the data the original app wrote under the "usuarios"
// key.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Active   bool   `json:"sesion"`
}
