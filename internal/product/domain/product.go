package domain

import "time"

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Image       string
	Category    string
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductFilter selects a page of the catalog. Category is matched exactly
// and Search as a substring of name or description, both case-insensitive.
// Page is 1-based.
type ProductFilter struct {
	Category string
	Search   string
	Page     int
	Limit    int
}
