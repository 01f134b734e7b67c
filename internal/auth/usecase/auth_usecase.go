package usecase

import (
	"context"
	"strings"
	"time"

	authdomain "saypal-backend/internal/auth/domain"
	authdto "saypal-backend/internal/auth/dto"
	"saypal-backend/internal/auth/repository"
	"saypal-backend/pkg/config"
	"saypal-backend/pkg/password"
)

// authUsecase implements AuthUsecase.
type authUsecase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	discord   DiscordVerifier
	codec     *tokenCodec
	config    *config.Config
}

func NewAuthUsecase(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, discordClient DiscordVerifier, cfg *config.Config) (AuthUsecase, error) {
	codec, err := newTokenCodec(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		return nil, err
	}
	return &authUsecase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		discord:   discordClient,
		codec:     codec,
		config:    cfg,
	}, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	// Unknown email, password-less account, bad password and disabled account
	// are indistinguishable to the caller.
	if user == nil || user.HashedPassword == "" || !password.Verify(req.Password, user.HashedPassword) {
		return nil, authdomain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, authdomain.ErrInvalidCredentials
	}

	if user.HasSecondFactor() {
		// No refresh token until the second factor is cleared. The gated
		// access token is only good for completing that step.
		accessToken, err := u.codec.encode(user.ID, kindAccess, true, u.config.AccessTokenExpiry)
		if err != nil {
			return nil, err
		}
		return &authdto.TokenResponse{
			AccessToken: accessToken,
			TokenType:   "bearer",
			User:        user,
		}, nil
	}

	return u.issueTokens(user)
}

func (u *authUsecase) Signup(req *authdto.SignupRequest) (*authdto.TokenResponse, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.ErrEmailTaken
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = req.Email
		if i := strings.Index(req.Email, "@"); i > 0 {
			name = req.Email[:i]
		}
	}

	user := &authdomain.User{
		Email:              &req.Email,
		HashedPassword:     hashed,
		Name:               name,
		Birthday:           req.Birthday,
		Occupation:         req.Occupation,
		RelationshipStatus: req.RelationshipStatus,
		Interests:          req.Interests,
		PersonalityTraits:  req.PersonalityTraits,
		IsActive:           true,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return u.issueTokens(user)
}

func (u *authUsecase) DiscordSignIn(ctx context.Context, code string) (*authdto.TokenResponse, error) {
	identity, err := u.discord.ExchangeCode(ctx, code)
	if err != nil {
		return nil, authdomain.ErrInvalidCredentials
	}

	user, err := u.userRepo.FindByDiscordID(identity.ID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &authdomain.User{
			DiscordID: &identity.ID,
			Name:      identity.Username,
			IsActive:  true,
		}
		if identity.Email != "" {
			// Only attach the Discord email when no other account owns it.
			byEmail, err := u.userRepo.FindByEmail(identity.Email)
			if err != nil {
				return nil, err
			}
			if byEmail == nil {
				email := identity.Email
				user.Email = &email
			}
		}
		if err := u.userRepo.Create(user); err != nil {
			return nil, err
		}
	}

	if !user.IsActive {
		return nil, authdomain.ErrInactiveUser
	}

	if user.HasSecondFactor() {
		accessToken, err := u.codec.encode(user.ID, kindAccess, true, u.config.AccessTokenExpiry)
		if err != nil {
			return nil, err
		}
		return &authdto.TokenResponse{AccessToken: accessToken, TokenType: "bearer", User: user}, nil
	}

	return u.issueTokens(user)
}

func (u *authUsecase) LinkDiscord(ctx context.Context, userID, code string) (*authdomain.User, error) {
	identity, err := u.discord.ExchangeCode(ctx, code)
	if err != nil {
		return nil, authdomain.ErrInvalidCredentials
	}

	existing, err := u.userRepo.FindByDiscordID(identity.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != userID {
		return nil, authdomain.ErrDiscordTaken
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	user.DiscordID = &identity.ID
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) Refresh(refreshToken string) (*authdto.TokenResponse, error) {
	claims, err := u.codec.decode(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.Refresh {
		// An access token is never a valid refresh token.
		return nil, authdomain.ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, authdomain.ErrInactiveUser
	}

	newRefresh, err := u.codec.encode(user.ID, kindRefresh, false, u.config.RefreshTokenExpiry)
	if err != nil {
		return nil, err
	}

	// Revoke-old plus persist-new is one transaction: a replayed token finds
	// its row already gone and fails, never yielding a second live session.
	err = u.tokenRepo.Rotate(user.ID, refreshToken, &authdomain.RefreshToken{
		Token:  newRefresh,
		UserID: user.ID,
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := u.codec.encode(user.ID, kindAccess, false, u.config.AccessTokenExpiry)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		TokenType:    "bearer",
		User:         user,
	}, nil
}

func (u *authUsecase) Logout(userID, refreshToken string) error {
	return u.tokenRepo.Delete(refreshToken, userID)
}

func (u *authUsecase) LogoutAll(userID string) error {
	return u.tokenRepo.DeleteByUser(userID)
}

func (u *authUsecase) Authenticate(accessToken string) (*authdomain.User, error) {
	claims, err := u.codec.decode(accessToken)
	if err != nil {
		return nil, err
	}
	if claims.Refresh || claims.ForceTOTP {
		// Refresh tokens can't authorize requests, and a TOTP-gated token is
		// not usable until the second factor is cleared.
		return nil, authdomain.ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, authdomain.ErrInactiveUser
	}
	return user, nil
}

func (u *authUsecase) issueTokens(user *authdomain.User) (*authdto.TokenResponse, error) {
	accessToken, err := u.codec.encode(user.ID, kindAccess, false, u.config.AccessTokenExpiry)
	if err != nil {
		return nil, err
	}

	refreshToken, err := u.codec.encode(user.ID, kindRefresh, false, u.config.RefreshTokenExpiry)
	if err != nil {
		return nil, err
	}

	if err := u.tokenRepo.Create(&authdomain.RefreshToken{
		Token:  refreshToken,
		UserID: user.ID,
	}); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := u.userRepo.TouchLastLogin(user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		User:         user,
	}, nil
}
