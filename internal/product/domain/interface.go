package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_product_repository.go -package=mocks github.com/AnthoniusHendriyanto/shop-service/internal/product/domain ProductRepository

type ProductRepository interface {
	// List returns the requested page and the number of products matching
	// the filter before paging.
	List(ctx context.Context, filter ProductFilter) ([]*Product, int, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, product *Product) error
	// Update runs fn against the current record and stores the result
	// atomically.
	Update(ctx context.Context, id string, fn func(*Product) error) (*Product, error)
	Delete(ctx context.Context, id string) error
}
