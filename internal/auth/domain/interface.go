package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/AnthoniusHendriyanto/shop-service/internal/auth/domain UserRepository,RefreshTokenRepository

import "context"

// UserRepository is the credential store. Lookups that find nothing return
// (nil, nil); Create and Update enforce email uniqueness and return
// errors.ErrEmailAlreadyInUse on conflict. Update runs fn against the current
// record and stores the result atomically.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, id string, fn func(*User) error) (*User, error)
	Delete(ctx context.Context, id string) error
}

// RefreshTokenRepository is the ledger of refresh tokens that may still be
// exchanged.
type RefreshTokenRepository interface {
	Store(ctx context.Context, rt *RefreshToken) error
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)
	Delete(ctx context.Context, token string) error
	RevokeAllByUserID(ctx context.Context, userID string) (int, error)
	Rotate(ctx context.Context, oldToken string, next *RefreshToken) error
	CountByUserID(ctx context.Context, userID string) (int, error)
}
