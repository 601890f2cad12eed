// Package models defines the data the storefront CLI exchanges with the server.
package models

import "fmt"

// Product is a catalog item as returned by the server.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

func (p Product) String() string {
	s := fmt.Sprintf("%s  %-24s %10.2f  %s", p.ID, p.Name, p.Price, p.Description)
	if p.ImageURL != "" {
		s += "  [" + p.ImageURL + "]"
	}
	return s
}

// NewProduct is the form sent to create a product. ImagePath is optional.
type NewProduct struct {
	Name        string
	Price       string
	Description string
	ImagePath   string
}
