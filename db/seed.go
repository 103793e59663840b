package db

import (
	"context"
	"fmt"
	"time"

	authdomain "github.com/AnthoniusHendriyanto/shop-service/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/shop-service/internal/auth/service"
	productdomain "github.com/AnthoniusHendriyanto/shop-service/internal/product/domain"
	"github.com/google/uuid"
)

const (
	SamplePassword = "password123"
	sampleImage    = "https://via.placeholder.com/300x200"
)

var sampleUsers = []struct{ email, name string }{
	{"john@example.com", "John Doe"},
	{"jane@example.com", "Jane Smith"},
	{"test@example.com", "Test User"},
}

var sampleProducts = []productdomain.Product{
	{Name: "Laptop", Description: "High-performance laptop with 16GB RAM", Price: 999.99, Category: "Electronics", Stock: 10},
	{Name: "Wireless Mouse", Description: "Ergonomic wireless mouse with long battery life", Price: 29.99, Category: "Accessories", Stock: 50},
	{Name: "Mechanical Keyboard", Description: "RGB mechanical keyboard with cherry MX switches", Price: 89.99, Category: "Accessories", Stock: 30},
	{Name: "4K Monitor", Description: "27-inch 4K IPS monitor with HDR", Price: 399.99, Category: "Electronics", Stock: 15},
	{Name: "Headphones", Description: "Noise-cancelling wireless headphones", Price: 199.99, Category: "Audio", Stock: 20},
}

// Seed loads the demo accounts and catalog. All accounts share
// SamplePassword.
func Seed(ctx context.Context, store *Store, hasher service.PasswordHasher) error {
	hash, err := hasher.Hash(SamplePassword)
	if err != nil {
		return fmt.Errorf("failed to hash sample password: %w", err)
	}

	now := time.Now().UTC()
	for _, u := range sampleUsers {
		user := &authdomain.User{
			ID:           uuid.NewString(),
			Email:        u.email,
			PasswordHash: hash,
			Name:         u.name,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := store.Users.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.email, err)
		}
	}

	for _, p := range sampleProducts {
		p.ID = uuid.NewString()
		p.Image = sampleImage
		p.CreatedAt, p.UpdatedAt = now, now
		if err := store.Products.Create(ctx, &p); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.Name, err)
		}
	}

	return nil
}
