package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	autherror "github.com/AnthoniusHendriyanto/shop-service/internal/errors"
	"github.com/AnthoniusHendriyanto/shop-service/internal/logging"
	"github.com/AnthoniusHendriyanto/shop-service/internal/mocks"
	"github.com/AnthoniusHendriyanto/shop-service/internal/product/domain"
	"github.com/AnthoniusHendriyanto/shop-service/internal/product/dto"
	"github.com/AnthoniusHendriyanto/shop-service/internal/product/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*service.ProductService, *mocks.MockProductRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockProductRepository(ctrl)
	return service.NewProductService(repo, logging.Discard()), repo
}

func TestProductService_List(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().
		List(gomock.Any(), domain.ProductFilter{Category: "Audio", Page: 1, Limit: 100}).
		Return([]*domain.Product{{ID: "5", Name: "Headphones"}}, 1, nil)

	resp, err := svc.List(context.Background(), dto.ListQuery{Category: "Audio", Page: 0, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 100, resp.Limit)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Headphones", resp.Products[0].Name)
}

func TestProductService_List_EmptyIsNotNil(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, nil)

	resp, err := svc.List(context.Background(), dto.ListQuery{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Products)
	assert.Empty(t, resp.Products)
}

func TestProductService_Get(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().GetByID(gomock.Any(), "1").Return(&domain.Product{ID: "1", Name: "Laptop"}, nil)
	repo.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, autherror.ErrProductNotFound)

	p, err := svc.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", p.Name)

	_, err = svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, autherror.ErrProductNotFound)
}

func TestProductService_Create(t *testing.T) {
	price := 12.5

	t.Run("success", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Product) error {
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, "Pen", p.Name)
			assert.Equal(t, 12.5, p.Price)
			assert.Equal(t, p.CreatedAt, p.UpdatedAt)
			return nil
		})

		out, err := svc.Create(context.Background(), dto.CreateProductInput{Name: "Pen", Price: &price, Stock: 3})
		require.NoError(t, err)
		assert.Equal(t, 3, out.Stock)
	})

	t.Run("missing price", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Create(context.Background(), dto.CreateProductInput{Name: "Pen"})
		assert.ErrorIs(t, err, autherror.ErrInvalidProduct)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

		_, err := svc.Create(context.Background(), dto.CreateProductInput{Name: "Pen", Price: &price})
		assert.Error(t, err)
	})
}

func TestProductService_Update(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	stock := 5

	t.Run("only stock and updatedAt change", func(t *testing.T) {
		svc, repo := newService(t)

		original := domain.Product{
			ID: "1", Name: "Laptop", Description: "fast", Price: 999.99,
			Category: "Electronics", Stock: 10, CreatedAt: created, UpdatedAt: created,
		}
		repo.EXPECT().Update(gomock.Any(), "1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fn func(*domain.Product) error) (*domain.Product, error) {
				stored := original
				require.NoError(t, fn(&stored))
				return &stored, nil
			})

		out, err := svc.Update(context.Background(), "1", dto.UpdateProductInput{Stock: &stock})
		require.NoError(t, err)

		assert.Equal(t, 5, out.Stock)
		assert.True(t, out.UpdatedAt.After(created))
		assert.Equal(t, original.Name, out.Name)
		assert.Equal(t, original.Description, out.Description)
		assert.Equal(t, original.Price, out.Price)
		assert.Equal(t, original.Category, out.Category)
		assert.Equal(t, original.CreatedAt, out.CreatedAt)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().Update(gomock.Any(), "nope", gomock.Any()).Return(nil, autherror.ErrProductNotFound)

		_, err := svc.Update(context.Background(), "nope", dto.UpdateProductInput{Stock: &stock})
		assert.ErrorIs(t, err, autherror.ErrProductNotFound)
	})
}

func TestProductService_Delete(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Delete(gomock.Any(), "1").Return(nil)
	repo.EXPECT().Delete(gomock.Any(), "1").Return(autherror.ErrProductNotFound)

	require.NoError(t, svc.Delete(context.Background(), "1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "1"), autherror.ErrProductNotFound)
}
