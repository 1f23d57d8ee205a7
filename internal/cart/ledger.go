// Package cart manages the shopping cart for the current browsing context.
//
// The cart is persisted as one JSON document under the "cart" store key with
// the full product snapshot embedded in each line, so prices are frozen at
// add time. It is not tied to a specific account, matching the original app.
package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dvergara2005/shopkeeper/internal/common"
	"github.com/dvergara2005/shopkeeper/internal/logging"
	"github.com/dvergara2005/shopkeeper/internal/models"
	"github.com/dvergara2005/shopkeeper/internal/store"
)

// Ledger holds the cart's line items in insertion order, at most one line
// per product. Item count and total are always derived from the lines and
// never stored.
type Ledger struct {
	store store.Store
	log   logging.Logger
	items []models.LineItem
}

func NewLedger(s store.Store, log logging.Logger) *Ledger {
	return &Ledger{store: s, log: log}
}

// AddItem increments the quantity of an existing line for the product or
// appends a new quantity-1 line at the end, then persists the whole ledger.
func (l *Ledger) AddItem(ctx context.Context, p models.Product) error {
	for i := range l.items {
		if l.items[i].Product.ID == p.ID {
			l.items[i].Quantity++
			return l.Persist(ctx)
		}
	}
	l.items = append(l.items, models.LineItem{Product: p, Quantity: 1})
	return l.Persist(ctx)
}

// RemoveItem decrements the quantity of the product's line and drops the
// line when it reaches zero. Removing a product that is not in the cart is
// a no-op and does not touch the store.
func (l *Ledger) RemoveItem(ctx context.Context, productID int64) error {
	for i := range l.items {
		if l.items[i].Product.ID != productID {
			continue
		}
		l.items[i].Quantity--
		if l.items[i].Quantity == 0 {
			l.items = append(l.items[:i], l.items[i+1:]...)
		}
		return l.Persist(ctx)
	}
	return nil
}

// Items returns a copy of the current line items in insertion order.
func (l *Ledger) Items() []models.LineItem {
	items := make([]models.LineItem, len(l.items))
	copy(items, l.items)
	return items
}

// ItemCount is the sum of all line quantities.
func (l *Ledger) ItemCount() int {
	count := 0
	for _, item := range l.items {
		count += item.Quantity
	}
	return count
}

// Total is the sum of price × quantity over all lines, in whole pesos.
func (l *Ledger) Total() int64 {
	var total int64
	for _, item := range l.items {
		total += item.Product.Price * int64(item.Quantity)
	}
	return total
}

// Persist serializes the whole ledger under the cart key.
func (l *Ledger) Persist(ctx context.Context) error {
	items := l.items
	if items == nil {
		items = []models.LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	return l.store.Set(ctx, store.KeyCart, data)
}

// Restore loads the persisted ledger. Derived values are recomputed from the
// lines rather than trusted from the document, lines with a non-positive
// quantity or without a product id are dropped, and a corrupt document
// degrades to an empty cart.
func (l *Ledger) Restore(ctx context.Context) error {
	l.items = nil

	data, err := l.store.Get(ctx, store.KeyCart)
	if err != nil {
		l.log.Warn(ctx, "reading cart failed, starting empty", "error", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var items []models.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		l.log.Warn(ctx, "cart document is malformed, starting empty",
			"error", fmt.Errorf("%w: %w", common.ErrMalformedRecord, err))
		return nil
	}

	for _, item := range items {
		if item.Product.ID == 0 || item.Quantity < 1 {
			continue
		}
		l.items = append(l.items, item)
	}
	return nil
}
