package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/AnthoniusHendriyanto/shop-service/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/shop-service/internal/auth/dto"
	autherror "github.com/AnthoniusHendriyanto/shop-service/internal/errors"
	"github.com/AnthoniusHendriyanto/shop-service/internal/logging"
	"github.com/google/uuid"
)

type UserService struct {
	repo         domain.UserRepository
	tokenRepo    domain.RefreshTokenRepository
	tokenService TokenGenerator
	hasher       PasswordHasher
	logger       logging.Logger

	dummyOnce sync.Once
	dummy     string
}

func NewUserService(
	repo domain.UserRepository,
	tokenRepo domain.RefreshTokenRepository,
	tokenService TokenGenerator,
	hasher PasswordHasher,
	logger logging.Logger,
) *UserService {
	return &UserService{
		repo:         repo,
		tokenRepo:    tokenRepo,
		tokenService: tokenService,
		hasher:       hasher,
		logger:       logger.With("component", "auth"),
	}
}

// dummyHash is a hash of a throwaway password at the configured cost, used to
// keep unknown-email logins as slow as real ones.
func (s *UserService) dummyHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash(uuid.NewString())
		if err != nil {
			s.logger.Warn(context.Background(), "failed to build dummy hash", "error", err)
			return
		}
		s.dummy = hash
	})
	return s.dummy
}

func (s *UserService) Signup(ctx context.Context, input dto.SignupInput) (*dto.AuthResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, autherror.ErrMissingCredentials
	}

	existingUser, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if existingUser != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	name := input.Name
	if name == "" {
		name, _, _ = strings.Cut(input.Email, "@")
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Create re-checks uniqueness under the store lock, so a concurrent
	// signup for the same email still ends in ErrEmailAlreadyInUse.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info(ctx, "user signed up", "user_id", user.ID)

	return s.issueSession(ctx, user)
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, autherror.ErrMissingCredentials
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// Both failure causes are logged, but the caller sees one error.
	if user == nil {
		// Burn the same bcrypt work as a real check so timing does not
		// reveal whether the account exists.
		s.hasher.Verify(input.Password, s.dummyHash())
		s.logger.Info(ctx, "login failed", "reason", "unknown email", "ip", input.IPAddress)
		return nil, autherror.ErrInvalidCredentials
	}
	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		s.logger.Info(ctx, "login failed", "reason", "password mismatch", "user_id", user.ID, "ip", input.IPAddress)
		return nil, autherror.ErrInvalidCredentials
	}

	resp, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	sessions, err := s.tokenRepo.CountByUserID(ctx, user.ID)
	if err != nil {
		s.logger.Warn(ctx, "failed to count sessions", "user_id", user.ID, "error", err)
	}

	s.logger.Info(ctx, "login succeeded", "user_id", user.ID, "ip", input.IPAddress, "user_agent", input.UserAgent, "sessions", sessions)
	return resp, nil
}

// Logout revokes every refresh token the user holds, not only the one tied
// to the calling session.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	revoked, err := s.tokenRepo.RevokeAllByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	s.logger.Info(ctx, "user logged out", "user_id", userID, "revoked_tokens", revoked)
	return nil
}

func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.AuthResponse, error) {
	if input.RefreshToken == "" {
		return nil, autherror.ErrMissingRefreshToken
	}

	// Step 1: the token must still be in the ledger
	stored, err := s.tokenRepo.GetByToken(ctx, input.RefreshToken)
	if errors.Is(err, autherror.ErrRefreshTokenNotFound) || (err == nil && stored == nil) {
		return nil, autherror.ErrRefreshTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	// Step 2: signature and expiry; a stale entry is dropped from the ledger
	claims, err := s.tokenService.VerifyRefreshToken(input.RefreshToken)
	if err == nil && claims.UserID != stored.UserID {
		err = autherror.ErrInvalidToken
	}
	if err != nil {
		if delErr := s.tokenRepo.Delete(ctx, input.RefreshToken); delErr != nil {
			s.logger.Warn(ctx, "failed to drop stale refresh token", "user_id", stored.UserID, "error", delErr)
		}
		s.logger.Info(ctx, "refresh rejected", "user_id", stored.UserID, "reason", err.Error())
		return nil, autherror.ErrRefreshTokenInvalid
	}

	// Step 3: the owner must still exist
	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	// Step 4: mint a new pair and swap the ledger entry in one step
	accessToken, refreshToken, err := s.tokenService.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new tokens: %w", err)
	}

	next := &domain.RefreshToken{Token: refreshToken, UserID: user.ID, CreatedAt: time.Now().UTC()}
	if err := s.tokenRepo.Rotate(ctx, input.RefreshToken, next); err != nil {
		if errors.Is(err, autherror.ErrRefreshTokenNotFound) {
			// Another request consumed the token first.
			return nil, autherror.ErrRefreshTokenNotFound
		}
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return &dto.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserSummary(user),
	}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	out := dto.NewUserOutput(user)
	return &out, nil
}

// UpdateProfile applies the non-empty fields of input as one atomic store
// update. An email already held by another user rejects the whole change.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input dto.UpdateProfileInput) (*dto.UserOutput, error) {
	var hashed string
	if input.Password != "" {
		var err error
		if hashed, err = s.hasher.Hash(input.Password); err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	user, err := s.repo.Update(ctx, userID, func(u *domain.User) error {
		if input.Email != "" {
			u.Email = input.Email
		}
		if input.Name != "" {
			u.Name = input.Name
		}
		if input.Avatar != "" {
			avatar := input.Avatar
			u.Avatar = &avatar
		}
		if hashed != "" {
			u.PasswordHash = hashed
		}
		u.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	out := dto.NewUserOutput(user)
	return &out, nil
}

// DeleteAccount removes the user and revokes all of its refresh tokens.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	revoked, err := s.tokenRepo.RevokeAllByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	s.logger.Info(ctx, "account deleted", "user_id", userID, "revoked_tokens", revoked)
	return nil
}

func (s *UserService) issueSession(ctx context.Context, user *domain.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, err := s.tokenService.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	rt := &domain.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.tokenRepo.Store(ctx, rt); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	// DeleteAccount removes the user before revoking its tokens, so a record
	// stored after that revocation is caught here and dropped.
	current, err := s.repo.GetByID(ctx, user.ID)
	if err != nil || current == nil {
		if delErr := s.tokenRepo.Delete(ctx, refreshToken); delErr != nil {
			s.logger.Warn(ctx, "failed to drop orphaned refresh token", "user_id", user.ID, "error", delErr)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		return nil, autherror.ErrInvalidCredentials
	}

	return &dto.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserSummary(user),
	}, nil
}
