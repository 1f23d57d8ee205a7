package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dvergara2005/shopkeeper/internal/catalog"
	"github.com/dvergara2005/shopkeeper/internal/models"
)

func printProducts(list []models.Product) {
	if len(list) == 0 {
		printlnFn("No products match")
		return
	}
	for _, p := range list {
		printlnFn(fmt.Sprintf("%d. %s — %s — %s", p.ID, p.Name, p.Brand, catalog.FormatPrice(p.Price)))
	}
}

// Products lists the whole catalog.
func (a *App) Products(ctx context.Context) error {
	printProducts(a.catalog.All())
	return nil
}

// FilterProducts prompts for a price range and a brand and lists the
// matching products.
func (a *App) FilterProducts(ctx context.Context) error {
	printlnFn("Brands: " + strings.Join(a.catalog.Brands(), ", "))

	priceRange, err := getSimpleText(a.reader, "Price range min-max (or 'all')", os.Stdout)
	if err != nil {
		return err
	}
	brand, err := getSimpleText(a.reader, "Brand (or 'all')", os.Stdout)
	if err != nil {
		return err
	}

	printProducts(a.catalog.Filter(priceRange, brand))
	return nil
}

// AddToCart prompts for a product id and adds one unit to the cart.
func (a *App) AddToCart(ctx context.Context) error {
	id, err := getInt(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	p, ok := a.catalog.ByID(id)
	if !ok {
		printlnFn("No such product")
		return nil
	}

	if err := a.ledger.AddItem(ctx, p); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Added %s. Items in cart: %d", p.Name, a.ledger.ItemCount()))
	return nil
}

// RemoveFromCart prompts for a product id and removes one unit from the cart.
func (a *App) RemoveFromCart(ctx context.Context) error {
	id, err := getInt(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.ledger.RemoveItem(ctx, id); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Items in cart: %d", a.ledger.ItemCount()))
	return nil
}

// ShowCart prints the cart lines with the running total.
func (a *App) ShowCart(ctx context.Context) error {
	items := a.ledger.Items()
	if len(items) == 0 {
		printlnFn("Your cart is empty")
		return nil
	}

	for _, line := range items {
		printlnFn(fmt.Sprintf("%dx %s — %s", line.Quantity, line.Product.Name, catalog.FormatPrice(line.Product.Price)))
	}
	printlnFn(fmt.Sprintf("%d items, total %s", a.ledger.ItemCount(), catalog.FormatPrice(a.ledger.Total())))
	return nil
}
