package models

// LineItem is a (product, quantity) pair inside a cart. The product is a
// full snapshot taken at add time, so later catalog edits do not change the
// price of items already in the cart.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
