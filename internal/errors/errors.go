package errors

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrMissingCredentials   = errors.New("email and password are required")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailAlreadyInUse    = errors.New("email already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrMissingRefreshToken  = errors.New("refresh token required")
	ErrRefreshTokenNotFound = errors.New("invalid refresh token")
	ErrRefreshTokenInvalid  = errors.New("invalid or expired refresh token")
	ErrMissingToken         = errors.New("authentication required")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token expired")
	ErrInvalidProduct       = errors.New("name and price are required")
	ErrProductNotFound      = errors.New("product not found")
)

const internalMessage = "Internal server error"

// HTTPStatus maps a service error to the status code and message returned to
// the caller. Unknown errors collapse to a generic 500 so internals never leak.
func HTTPStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrMissingCredentials):
		return http.StatusBadRequest, "Email and password are required"
	case errors.Is(err, ErrMissingRefreshToken):
		return http.StatusBadRequest, "Refresh token required"
	case errors.Is(err, ErrInvalidProduct):
		return http.StatusBadRequest, "Name and price are required"
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, "Invalid input"
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, ErrMissingToken):
		return http.StatusUnauthorized, "Authentication required"
	case errors.Is(err, ErrRefreshTokenNotFound):
		return http.StatusForbidden, "Invalid refresh token"
	case errors.Is(err, ErrRefreshTokenInvalid):
		return http.StatusForbidden, "Invalid or expired refresh token"
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrTokenExpired):
		return http.StatusForbidden, "Invalid or expired token"
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, ErrEmailAlreadyInUse):
		return http.StatusConflict, "Email already exists"
	default:
		return http.StatusInternalServerError, internalMessage
	}
}
