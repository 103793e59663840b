package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/AnthoniusHendriyanto/shop-service/internal/auth/domain"
	repo "github.com/AnthoniusHendriyanto/shop-service/internal/auth/repository/memory"
	autherror "github.com/AnthoniusHendriyanto/shop-service/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rt(token, userID string) *domain.RefreshToken {
	return &domain.RefreshToken{Token: token, UserID: userID, CreatedAt: time.Now()}
}

func TestRefreshTokenRepository_StoreAndLookup(t *testing.T) {
	ctx := context.Background()
	r := repo.NewRefreshTokenRepository()

	require.NoError(t, r.Store(ctx, rt("t1", "user-1")))

	got, err := r.GetByToken(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)

	_, err = r.GetByToken(ctx, "unknown")
	assert.ErrorIs(t, err, autherror.ErrRefreshTokenNotFound)
}

func TestRefreshTokenRepository_Delete(t *testing.T) {
	ctx := context.Background()
	r := repo.NewRefreshTokenRepository()
	require.NoError(t, r.Store(ctx, rt("t1", "user-1")))
	require.NoError(t, r.Store(ctx, rt("t2", "user-1")))

	require.NoError(t, r.Delete(ctx, "t1"))
	require.NoError(t, r.Delete(ctx, "t1"))

	_, err := r.GetByToken(ctx, "t1")
	assert.ErrorIs(t, err, autherror.ErrRefreshTokenNotFound)

	count, err := r.CountByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRefreshTokenRepository_RevokeAllByUserID(t *testing.T) {
	ctx := context.Background()
	r := repo.NewRefreshTokenRepository()
	require.NoError(t, r.Store(ctx, rt("a1", "alice")))
	require.NoError(t, r.Store(ctx, rt("a2", "alice")))
	require.NoError(t, r.Store(ctx, rt("b1", "bob")))

	revoked, err := r.RevokeAllByUserID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, revoked)

	for _, token := range []string{"a1", "a2"} {
		_, err := r.GetByToken(ctx, token)
		assert.ErrorIs(t, err, autherror.ErrRefreshTokenNotFound)
	}

	_, err = r.GetByToken(ctx, "b1")
	assert.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	revoked, err = r.RevokeAllByUserID(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, revoked)
}

func TestRefreshTokenRepository_Rotate(t *testing.T) {
	ctx := context.Background()

	t.Run("swaps old for new", func(t *testing.T) {
		r := repo.NewRefreshTokenRepository()
		require.NoError(t, r.Store(ctx, rt("old", "user-1")))

		require.NoError(t, r.Rotate(ctx, "old", rt("new", "user-1")))

		_, err := r.GetByToken(ctx, "old")
		assert.ErrorIs(t, err, autherror.ErrRefreshTokenNotFound)
		got, err := r.GetByToken(ctx, "new")
		require.NoError(t, err)
		assert.Equal(t, "user-1", got.UserID)
	})

	t.Run("old token already consumed", func(t *testing.T) {
		r := repo.NewRefreshTokenRepository()

		err := r.Rotate(ctx, "old", rt("new", "user-1"))
		assert.ErrorIs(t, err, autherror.ErrRefreshTokenNotFound)
		assert.Zero(t, r.Len())
	})

	t.Run("concurrent rotations of one token admit a single winner", func(t *testing.T) {
		r := repo.NewRefreshTokenRepository()
		require.NoError(t, r.Store(ctx, rt("old", "user-1")))

		const workers = 16
		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			wins int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				next := rt("new-"+string(rune('a'+i)), "user-1")
				if err := r.Rotate(ctx, "old", next); err == nil {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 1, wins)
		assert.Equal(t, 1, r.Len())
	})
}
