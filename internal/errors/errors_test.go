package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing credentials", ErrMissingCredentials, http.StatusBadRequest, "Email and password are required"},
		{"missing refresh token", ErrMissingRefreshToken, http.StatusBadRequest, "Refresh token required"},
		{"invalid product", ErrInvalidProduct, http.StatusBadRequest, "Name and price are required"},
		{"bad credentials", ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{"missing token", ErrMissingToken, http.StatusUnauthorized, "Authentication required"},
		{"unknown refresh token", ErrRefreshTokenNotFound, http.StatusForbidden, "Invalid refresh token"},
		{"stale refresh token", ErrRefreshTokenInvalid, http.StatusForbidden, "Invalid or expired refresh token"},
		{"invalid token", ErrInvalidToken, http.StatusForbidden, "Invalid or expired token"},
		{"expired token", ErrTokenExpired, http.StatusForbidden, "Invalid or expired token"},
		{"user not found", ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"product not found", ErrProductNotFound, http.StatusNotFound, "Product not found"},
		{"duplicate email", ErrEmailAlreadyInUse, http.StatusConflict, "Email already exists"},
		{"wrapped sentinel", fmt.Errorf("update profile: %w", ErrEmailAlreadyInUse), http.StatusConflict, "Email already exists"},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := HTTPStatus(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
