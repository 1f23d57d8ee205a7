// Package catalog holds the storefront's product list and its filters.
//
// The catalog is fixed at startup (the original app hardcodes it) and admin
// edits live in memory only; they are not persisted and reset on restart,
// matching the original behavior.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dvergara2005/shopkeeper/internal/common"
	"github.com/dvergara2005/shopkeeper/internal/models"
)

// FilterAll selects every price range or brand.
const FilterAll = "all"

type Catalog struct {
	mu       sync.RWMutex
	products []models.Product
}

func New(products []models.Product) *Catalog {
	cp := make([]models.Product, len(products))
	copy(cp, products)
	return &Catalog{products: cp}
}

// Default returns the storefront's perfume catalog.
func Default() *Catalog {
	return New([]models.Product{
		{ID: 1, Name: "Club De Nuit Woman", Description: "Armaf EDP 100ml", Price: 45000, Brand: "Armaf", Image: "assets/img/cdnWoman.jpg"},
		{ID: 2, Name: "Eros Flame", Description: "Versace EDP 100ml", Price: 75000, Brand: "Versace", Image: "assets/img/erosFlame.jpg"},
		{ID: 3, Name: "Gentleman Intense", Description: "Givenchy EDT 100ml", Price: 65000, Brand: "Givenchy", Image: "assets/img/gentleman.jpg"},
		{ID: 4, Name: "Scandal Pour Homme", Description: "Jean Paul Gaultier EDT 100ml", Price: 80000, Brand: "Jean Paul Gaultier", Image: "assets/img/jpgEscandal.jpg"},
		{ID: 5, Name: "Asad", Description: "Lattafa Perfumes EDP 100ml", Price: 35000, Brand: "Lattafa", Image: "assets/img/laattafaAsad.jpg"},
		{ID: 6, Name: "Halloween Man X", Description: "Halloween EDT 100ml", Price: 25000, Brand: "Halloween", Image: "assets/img/manX.jpg"},
		{ID: 7, Name: "Phantom", Description: "Paco Rabanne EDT 100ml", Price: 75000, Brand: "Paco Rabanne", Image: "assets/img/phantom.jpg"},
		{ID: 8, Name: "Toy Boy", Description: "Moschino EDP 100ml", Price: 80000, Brand: "Moschino", Image: "assets/img/toyBoy.jpg"},
		{ID: 9, Name: "Ultra Male", Description: "Jean Paul Gaultier EDT 75ml", Price: 50000, Brand: "Jean Paul Gaultier", Image: "assets/img/jpgUltraMale.jpg"},
		{ID: 10, Name: "Turathi Blue", Description: "Afnan EDT 100ml", Price: 32000, Brand: "Afnan", Image: "assets/img/afnanTurathiBlue.jpg"},
		{ID: 11, Name: "Spicebomb Extreme", Description: "Viktor&Rolf EDP 100ml", Price: 120000, Brand: "Viktor&Rolf", Image: "assets/img/spiceBomb.jpg"},
		{ID: 12, Name: "The Most Wanted", Description: "Azzaro EDP 100ml", Price: 85000, Brand: "Azzaro", Image: "assets/img/theMostWanted.jpg"},
	})
}

// All returns every product in catalog order.
func (c *Catalog) All() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cp := make([]models.Product, len(c.products))
	copy(cp, c.products)
	return cp
}

// ByID returns the product with the given id.
func (c *Catalog) ByID(id int64) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Brands returns the distinct brands in catalog order, for the filter UI.
func (c *Catalog) Brands() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]struct{}, len(c.products))
	brands := make([]string, 0, len(c.products))
	for _, p := range c.products {
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		brands = append(brands, p.Brand)
	}
	return brands
}

// Filter returns the products matching both filters. priceRange is either
// FilterAll or a "min-max" expression; an omitted max ("80000-") leaves the
// range unbounded above. brand is either FilterAll or an exact brand name.
func (c *Catalog) Filter(priceRange, brand string) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var matched []models.Product
	for _, p := range c.products {
		if !matchesPrice(p.Price, priceRange) {
			continue
		}
		if brand != FilterAll && p.Brand != brand {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func matchesPrice(price int64, priceRange string) bool {
	if priceRange == FilterAll || priceRange == "" {
		return true
	}

	parts := strings.SplitN(priceRange, "-", 2)
	min, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return true
	}
	if price < min {
		return false
	}
	if len(parts) < 2 || parts[1] == "" {
		return true
	}
	max, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return true
	}
	return price <= max
}

// Update replaces the catalog entry with the same id (an admin edit).
// Returns common.ErrNotFound for an unknown id.
func (c *Catalog) Update(p models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == p.ID {
			c.products[i] = p
			return nil
		}
	}
	return fmt.Errorf("update product %d: %w", p.ID, common.ErrNotFound)
}

var (
	clp        = currency.MustParseISO("CLP")
	clpPrinter = message.NewPrinter(language.MustParse("es-CL"))
)

// FormatPrice renders a whole-peso amount as Chilean currency, e.g. 45000
// becomes "CLP 45.000" (presentation only; arithmetic stays on int64).
func FormatPrice(price int64) string {
	return clpPrinter.Sprint(currency.Symbol(clp.Amount(price)))
}
