package memory

import (
	"context"
	"strings"
	"sync"

	autherror "github.com/AnthoniusHendriyanto/shop-service/internal/errors"
	"github.com/AnthoniusHendriyanto/shop-service/internal/product/domain"
)

// ProductRepository keeps the catalog in insertion order.
type ProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) List(_ context.Context, filter domain.ProductFilter) ([]*domain.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category := strings.ToLower(filter.Category)
	search := strings.ToLower(filter.Search)

	matched := make([]*domain.Product, 0, len(r.products))
	for i := range r.products {
		p := r.products[i]
		if category != "" && strings.ToLower(p.Category) != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		matched = append(matched, &p)
	}

	total := len(matched)
	if filter.Page < 1 || filter.Limit < 1 {
		return matched, total, nil
	}

	// Compare page numbers before multiplying so a huge page cannot overflow.
	pages := total / filter.Limit
	if total%filter.Limit != 0 {
		pages++
	}
	if filter.Page > pages {
		return []*domain.Product{}, total, nil
	}

	start := (filter.Page - 1) * filter.Limit
	end := total
	if filter.Limit < total-start {
		end = start + filter.Limit
	}
	return matched[start:end], total, nil
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, autherror.ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}

func (r *ProductRepository) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append(r.products, *product)
	return nil
}

// Update applies fn to a copy of the stored product and writes it back under
// one write lock. Nothing is written when fn fails.
func (r *ProductRepository) Update(_ context.Context, id string, fn func(*domain.Product) error) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, autherror.ErrProductNotFound
	}

	next := r.products[i]
	if err := fn(&next); err != nil {
		return nil, err
	}
	next.ID = id

	r.products[i] = next
	return &next, nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return autherror.ErrProductNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

func (r *ProductRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}

func (r *ProductRepository) indexOf(id string) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}
