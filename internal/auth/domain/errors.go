package domain

import "errors"

var (
	// ErrInvalidCredentials covers every login failure: unknown email, missing
	// password hash, wrong password, inactive account. Collapsing them denies
	// callers a user-enumeration signal.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrInvalidToken covers malformed, expired, wrong-kind and
	// revoked-or-rotated tokens alike, for the same reason.
	ErrInvalidToken = errors.New("could not validate credentials")

	ErrEmailTaken   = errors.New("email already registered")
	ErrDiscordTaken = errors.New("discord account already linked")
	ErrUserNotFound = errors.New("user not found")
	ErrInactiveUser = errors.New("inactive user")

	// ErrTokenExists guards the refresh-token store against inserting the same
	// (token, user) pair twice.
	ErrTokenExists = errors.New("refresh token already exists for this user")
)
