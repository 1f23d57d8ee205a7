package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Products(ctx context.Context) error
	FilterProducts(ctx context.Context) error
	AddToCart(ctx context.Context) error
	RemoveFromCart(ctx context.Context) error
	ShowCart(ctx context.Context) error

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Recover(ctx context.Context) error

	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	SetImage(ctx context.Context) error

	Users(ctx context.Context) error
	DeleteUser(ctx context.Context) error
	EditProduct(ctx context.Context) error

	People(ctx context.Context) error
	AddPerson(ctx context.Context) error
	EditPerson(ctx context.Context) error
	DeletePerson(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the shopkeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help                     — show available commands
//	  - products | filter        — browse the catalog
//	  - add | remove | cart      — manage the shopping cart
//	  - exit | quit              — leave the program
//
//	Anonymous:
//	  - register | login | recover
//
//	Logged in:
//	  - profile | editprofile | setimage | logout
//
//	Admin (logged in as the admin account):
//	  - users | deluser | editproduct
//	  - people | addperson | editperson | delperson
//
// Any errors returned by command handlers are ignored here; handlers report
// their own problems. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: (p)roducts, filter, add, remove, cart, exit")
			if a.isLoggedIn() {
				printlnFn("Account: profile, editprofile, setimage, logout")
			} else {
				printlnFn("Account: register, login, recover")
			}
			if a.isAdmin() {
				printlnFn("Admin: users, deluser, editproduct, people, addperson, editperson, delperson")
			}

		case "p", "products":
			_ = a.Products(ctx)

		case "filter":
			_ = a.FilterProducts(ctx)

		case "add":
			_ = a.AddToCart(ctx)

		case "remove":
			_ = a.RemoveFromCart(ctx)

		case "cart":
			_ = a.ShowCart(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "recover":
			_ = a.Recover(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			if !a.isLoggedIn() {
				printlnFn("Please log in first")
				continue
			}
			_ = a.Profile(ctx)

		case "editprofile":
			if !a.isLoggedIn() {
				printlnFn("Please log in first")
				continue
			}
			_ = a.EditProfile(ctx)

		case "setimage":
			if !a.isLoggedIn() {
				printlnFn("Please log in first")
				continue
			}
			_ = a.SetImage(ctx)

		case "users":
			if !a.isAdmin() {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.Users(ctx)

		case "deluser":
			if !a.isAdmin() {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.DeleteUser(ctx)

		case "editproduct":
			if !a.isAdmin() {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.EditProduct(ctx)

		case "people":
			if !a.isAdmin() {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.People(ctx)

		case "addperson":
			if !a.isAdmin() {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.AddPerson(ctx)

		case "editperson":
			if !a.isAdmin() {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.EditPerson(ctx)

		case "delperson":
			if !a.isAdmin() {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.DeletePerson(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
