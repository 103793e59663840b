package service

import (
	"context"
	"fmt"
	"time"

	autherror "github.com/AnthoniusHendriyanto/shop-service/internal/errors"
	"github.com/AnthoniusHendriyanto/shop-service/internal/logging"
	"github.com/AnthoniusHendriyanto/shop-service/internal/product/domain"
	"github.com/AnthoniusHendriyanto/shop-service/internal/product/dto"
	"github.com/google/uuid"
)

type ProductService struct {
	repo   domain.ProductRepository
	logger logging.Logger
}

func NewProductService(repo domain.ProductRepository, logger logging.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger.With("component", "product")}
}

func (s *ProductService) List(ctx context.Context, query dto.ListQuery) (*dto.ListResponse, error) {
	query = query.Normalize()

	products, total, err := s.repo.List(ctx, domain.ProductFilter{
		Category: query.Category,
		Search:   query.Search,
		Page:     query.Page,
		Limit:    query.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	out := make([]dto.ProductOutput, 0, len(products))
	for _, p := range products {
		out = append(out, dto.NewProductOutput(p))
	}

	return &dto.ListResponse{
		Products: out,
		Total:    total,
		Page:     query.Page,
		Limit:    query.Limit,
	}, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*dto.ProductOutput, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	out := dto.NewProductOutput(p)
	return &out, nil
}

func (s *ProductService) Create(ctx context.Context, input dto.CreateProductInput) (*dto.ProductOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, autherror.ErrInvalidProduct
	}

	now := time.Now().UTC()
	p := &domain.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
		Image:       input.Image,
		Category:    input.Category,
		Stock:       input.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info(ctx, "product created", "product_id", p.ID)

	out := dto.NewProductOutput(p)
	return &out, nil
}

func (s *ProductService) Update(ctx context.Context, id string, input dto.UpdateProductInput) (*dto.ProductOutput, error) {
	p, err := s.repo.Update(ctx, id, func(p *domain.Product) error {
		input.Apply(p)
		p.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	out := dto.NewProductOutput(p)
	return &out, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info(ctx, "product deleted", "product_id", id)
	return nil
}
