package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Avatar       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is a ledger entry. It exists only while the token it tracks
// has been issued and not yet rotated out or revoked.
type RefreshToken struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}
