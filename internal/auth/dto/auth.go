package dto

import (
	"time"

	authdomain "saypal-backend/internal/auth/domain"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Email              string         `json:"email" binding:"required,email"`
	Password           string         `json:"password" binding:"required,min=8"`
	Name               string         `json:"name"`
	Birthday           *time.Time     `json:"birthday,omitempty"`
	Occupation         *string        `json:"occupation,omitempty"`
	RelationshipStatus *string        `json:"relationship_status,omitempty"`
	Interests          []string       `json:"interests,omitempty"`
	PersonalityTraits  map[string]any `json:"personality_traits,omitempty"`
}

type DiscordSignInRequest struct {
	Code string `json:"code" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse mirrors the OAuth2 token envelope. RefreshToken is empty when
// the account still has to clear its second factor.
type TokenResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token,omitempty"`
	TokenType    string           `json:"token_type"`
	User         *authdomain.User `json:"user,omitempty"`
}
