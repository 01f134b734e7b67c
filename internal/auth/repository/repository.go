package repository

import (
	"time"

	authdomain "saypal-backend/internal/auth/domain"
)

// UserRepository owns persistence for user accounts. Lookups return
// (nil, nil) when no row matches; callers decide whether absence is an error.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByID(id string) (*authdomain.User, error)
	FindByEmail(email string) (*authdomain.User, error)
	FindByDiscordID(discordID int64) (*authdomain.User, error)
	List(limit, offset int) ([]*authdomain.User, error)
	Update(user *authdomain.User) error
	Delete(id string) error
	TouchLastLogin(id string, at time.Time) error
}

// TokenRepository owns persistence for refresh tokens.
type TokenRepository interface {
	// Create inserts a new row; authdomain.ErrTokenExists when the exact
	// (token, user) pair is already present.
	Create(token *authdomain.RefreshToken) error

	// Find returns (nil, nil) when the pair is absent.
	Find(token, userID string) (*authdomain.RefreshToken, error)

	// Delete removes one row; deleting an absent row is a no-op.
	Delete(token, userID string) error

	// DeleteByUser removes every token for a user (password change, full logout).
	DeleteByUser(userID string) error

	// Rotate atomically revokes oldToken and persists newToken in a single
	// transaction. It returns authdomain.ErrInvalidToken when oldToken is not
	// in the store, so of two concurrent rotations of the same token exactly
	// one succeeds.
	Rotate(userID, oldToken string, newToken *authdomain.RefreshToken) error
}
