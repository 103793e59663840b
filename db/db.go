// Package db owns the process-wide in-memory stores. Nothing survives a
// restart.
package db

import (
	authmemory "github.com/AnthoniusHendriyanto/shop-service/internal/auth/repository/memory"
	productmemory "github.com/AnthoniusHendriyanto/shop-service/internal/product/repository/memory"
)

type Store struct {
	Users         *authmemory.UserRepository
	RefreshTokens *authmemory.RefreshTokenRepository
	Products      *productmemory.ProductRepository
}

func New() *Store {
	return &Store{
		Users:         authmemory.NewUserRepository(),
		RefreshTokens: authmemory.NewRefreshTokenRepository(),
		Products:      productmemory.NewProductRepository(),
	}
}
