package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dvergara2005/shopkeeper/internal/cart"
	"github.com/dvergara2005/shopkeeper/internal/catalog"
	"github.com/dvergara2005/shopkeeper/internal/config"
	"github.com/dvergara2005/shopkeeper/internal/logging"
	"github.com/dvergara2005/shopkeeper/internal/people"
	"github.com/dvergara2005/shopkeeper/internal/profile"
	"github.com/dvergara2005/shopkeeper/internal/session"
	"github.com/dvergara2005/shopkeeper/internal/store"
	"github.com/dvergara2005/shopkeeper/internal/users"

	_ "modernc.org/sqlite"
)

// AdminEmail marks the account that unlocks the administrative commands.
const AdminEmail = "admin@admin"

type App struct {
	config     *config.Config
	log        logging.Logger
	store      store.Store
	closeStore func() error
	directory  *users.Directory
	gate       *session.Gate
	ledger     *cart.Ledger
	images     *profile.Images
	catalog    *catalog.Catalog
	people     *people.Service
	reader     *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {

	ctx := context.Background()

	log := logging.NewConsoleLogger(os.Stderr, cfg.LogLevel)

	st, closeStore := store.Open(ctx, cfg.StorePath, log)

	directory := users.NewDirectory(st, log)

	ledger := cart.NewLedger(st, log)
	if err := ledger.Restore(ctx); err != nil {
		log.Warn(ctx, "could not restore the cart", "error", err)
	}

	client := people.NewClient(cfg.PeopleURL, cfg.PeopleToken, cfg.FetchTimeout)

	return &App{
		config:     cfg,
		log:        log,
		store:      st,
		closeStore: closeStore,
		directory:  directory,
		gate:       session.NewGate(directory),
		ledger:     ledger,
		images:     profile.NewImages(st, log),
		catalog:    catalog.Default(),
		people:     people.NewService(client, log),
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.closeStore(); err != nil {
			a.log.Warn(ctx, "closing store", "error", err)
		}
	}()

	printlnFn("Welcome to shopkeeper (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.gate.IsActive(context.Background())
}

func (a *App) isAdmin() bool {
	u, ok := a.gate.ActiveUser(context.Background())
	return ok && u.Email == AdminEmail
}

// status renders the prompt decoration: the active user's email plus the
// number of items currently in the cart.
func (a *App) status() string {
	s := ""
	if u, ok := a.gate.ActiveUser(context.Background()); ok {
		s = u.Email
	}
	if n := a.ledger.ItemCount(); n > 0 {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("cart:%d", n)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
