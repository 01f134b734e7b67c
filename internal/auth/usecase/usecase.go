package usecase

import (
	"context"

	authdomain "saypal-backend/internal/auth/domain"
	authdto "saypal-backend/internal/auth/dto"
	"saypal-backend/pkg/discord"
)

// AuthUsecase is the session orchestrator: login, signup, Discord sign-in,
// refresh rotation and revocation.
type AuthUsecase interface {
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	Signup(req *authdto.SignupRequest) (*authdto.TokenResponse, error)
	DiscordSignIn(ctx context.Context, code string) (*authdto.TokenResponse, error)
	LinkDiscord(ctx context.Context, userID, code string) (*authdomain.User, error)
	Refresh(refreshToken string) (*authdto.TokenResponse, error)
	Logout(userID, refreshToken string) error
	LogoutAll(userID string) error

	// Authenticate validates an access token for request middleware. Refresh
	// tokens and tokens still gated behind TOTP are rejected.
	Authenticate(accessToken string) (*authdomain.User, error)
}

// DiscordVerifier is the slice of pkg/discord the orchestrator needs.
type DiscordVerifier interface {
	ExchangeCode(ctx context.Context, code string) (*discord.Identity, error)
}
