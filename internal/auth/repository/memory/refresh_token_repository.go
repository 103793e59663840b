package memory

import (
	"context"
	"sync"

	"github.com/AnthoniusHendriyanto/shop-service/internal/auth/domain"
	autherror "github.com/AnthoniusHendriyanto/shop-service/internal/errors"
)

// RefreshTokenRepository is the in-memory refresh token ledger. A token is
// present only while it is exchangeable; rotation and revocation remove it
// for good.
type RefreshTokenRepository struct {
	mu      sync.RWMutex
	byToken map[string]domain.RefreshToken
	byUser  map[string]map[string]struct{}
}

func NewRefreshTokenRepository() *RefreshTokenRepository {
	return &RefreshTokenRepository{
		byToken: make(map[string]domain.RefreshToken),
		byUser:  make(map[string]map[string]struct{}),
	}
}

func (r *RefreshTokenRepository) Store(_ context.Context, rt *domain.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.add(*rt)
	return nil
}

func (r *RefreshTokenRepository) GetByToken(_ context.Context, token string) (*domain.RefreshToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rt, ok := r.byToken[token]
	if !ok {
		return nil, autherror.ErrRefreshTokenNotFound
	}
	return &rt, nil
}

func (r *RefreshTokenRepository) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.remove(token)
	return nil
}

func (r *RefreshTokenRepository) RevokeAllByUserID(_ context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tokens := r.byUser[userID]
	for token := range tokens {
		delete(r.byToken, token)
	}
	delete(r.byUser, userID)
	return len(tokens), nil
}

// Rotate consumes oldToken and records next under a single lock. If oldToken
// is already gone, nothing is recorded and ErrRefreshTokenNotFound is
// returned.
func (r *RefreshTokenRepository) Rotate(_ context.Context, oldToken string, next *domain.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byToken[oldToken]; !ok {
		return autherror.ErrRefreshTokenNotFound
	}

	r.remove(oldToken)
	r.add(*next)
	return nil
}

func (r *RefreshTokenRepository) CountByUserID(_ context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser[userID]), nil
}

// Len reports the number of live refresh tokens across all users.
func (r *RefreshTokenRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byToken)
}

func (r *RefreshTokenRepository) add(rt domain.RefreshToken) {
	if prev, ok := r.byToken[rt.Token]; ok {
		r.unindex(prev)
	}

	r.byToken[rt.Token] = rt
	set, ok := r.byUser[rt.UserID]
	if !ok {
		set = make(map[string]struct{})
		r.byUser[rt.UserID] = set
	}
	set[rt.Token] = struct{}{}
}

func (r *RefreshTokenRepository) remove(token string) {
	rt, ok := r.byToken[token]
	if !ok {
		return
	}
	delete(r.byToken, token)
	r.unindex(rt)
}

func (r *RefreshTokenRepository) unindex(rt domain.RefreshToken) {
	set := r.byUser[rt.UserID]
	delete(set, rt.Token)
	if len(set) == 0 {
		delete(r.byUser, rt.UserID)
	}
}
