package memory

import (
	"context"
	"sync"

	"github.com/AnthoniusHendriyanto/shop-service/internal/auth/domain"
	autherror "github.com/AnthoniusHendriyanto/shop-service/internal/errors"
)

// UserRepository is the process-memory credential store. Records are copied
// on the way in and out, so callers never share state with the store.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byEmail map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return cloneUser(r.byID[id]), nil
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return autherror.ErrEmailAlreadyInUse
	}

	r.byID[user.ID] = cloneUser(user)
	r.byEmail[user.Email] = user.ID
	return nil
}

// Update applies fn to a copy of the stored user and writes the result back,
// all under one write lock. Nothing is written when fn fails or the new email
// is held by another user.
func (r *UserRepository) Update(_ context.Context, id string, fn func(*domain.User) error) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return nil, autherror.ErrUserNotFound
	}

	next := cloneUser(current)
	if err := fn(next); err != nil {
		return nil, err
	}
	next.ID = id

	if next.Email != current.Email {
		if owner, taken := r.byEmail[next.Email]; taken && owner != id {
			return nil, autherror.ErrEmailAlreadyInUse
		}
		delete(r.byEmail, current.Email)
		r.byEmail[next.Email] = id
	}

	r.byID[id] = next
	return cloneUser(next), nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return autherror.ErrUserNotFound
	}

	delete(r.byEmail, u.Email)
	delete(r.byID, id)
	return nil
}

func (r *UserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	if u.Avatar != nil {
		avatar := *u.Avatar
		c.Avatar = &avatar
	}
	return &c
}
