package dto

import (
	"time"

	"github.com/AnthoniusHendriyanto/shop-service/internal/product/domain"
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// CreateProductInput uses a pointer for Price so that an explicit 0 is
// accepted while an absent price is rejected.
type CreateProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
}

func (in CreateProductInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Price, validation.NotNil),
	)
}

// UpdateProductInput carries a partial update. Nil fields are left
// untouched; Name is also ignored when empty.
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
}

// Apply copies the present fields onto p.
func (in UpdateProductInput) Apply(p *domain.Product) {
	if in.Name != nil && *in.Name != "" {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
}

type ListQuery struct {
	Page     int
	Limit    int
	Category string
	Search   string
}

// Normalize replaces non-positive paging values with the defaults and caps
// the limit.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

type ProductOutput struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ListResponse struct {
	Products []ProductOutput `json:"products"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	Limit    int             `json:"limit"`
}

func NewProductOutput(p *domain.Product) ProductOutput {
	return ProductOutput{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Category:    p.Category,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
