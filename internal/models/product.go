package models

// Product is a catalog entry. Price is in whole Chilean pesos.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Brand       string `json:"brand"`
	Image       string `json:"image"`
}
