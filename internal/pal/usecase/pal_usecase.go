package usecase

import (
	authrepo "saypal-backend/internal/auth/repository"
	paldomain "saypal-backend/internal/pal/domain"
	paldto "saypal-backend/internal/pal/dto"
	"saypal-backend/internal/pal/repository"
)

// PalUsecase owns the business rules around pals: one pal per user, created
// with the owner's Discord id stamped on it so bot lookups stay cheap.
type PalUsecase interface {
	Create(userID string, req *paldto.CreatePalRequest) (*paldomain.Pal, error)
	GetByUserID(userID string) (*paldomain.Pal, error)
	GetByDiscordID(discordID int64) (*paldomain.Pal, error)
	Update(userID string, req *paldto.UpdatePalRequest) (*paldomain.Pal, error)
	Delete(userID string) error
}

type palUsecase struct {
	palRepo  repository.PalRepository
	userRepo authrepo.UserRepository
}

func NewPalUsecase(palRepo repository.PalRepository, userRepo authrepo.UserRepository) PalUsecase {
	return &palUsecase{palRepo: palRepo, userRepo: userRepo}
}

func (u *palUsecase) Create(userID string, req *paldto.CreatePalRequest) (*paldomain.Pal, error) {
	existing, err := u.palRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, paldomain.ErrPalExists
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	status := req.RelationshipStatus
	if status == "" {
		status = paldomain.DefaultRelationshipStatus
	}

	pal := &paldomain.Pal{
		UserID:             userID,
		Name:               req.Name,
		Personality:        req.Personality,
		RelationshipStatus: status,
		AvatarURL:          req.AvatarURL,
		Bio:                req.Bio,
		Preferences:        req.Preferences,
	}
	if user != nil {
		pal.DiscordID = user.DiscordID
	}

	if err := u.palRepo.Create(pal); err != nil {
		return nil, err
	}
	return pal, nil
}

func (u *palUsecase) GetByUserID(userID string) (*paldomain.Pal, error) {
	pal, err := u.palRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if pal == nil {
		return nil, paldomain.ErrPalNotFound
	}
	return pal, nil
}

func (u *palUsecase) GetByDiscordID(discordID int64) (*paldomain.Pal, error) {
	pal, err := u.palRepo.FindByDiscordID(discordID)
	if err != nil {
		return nil, err
	}
	if pal == nil {
		return nil, paldomain.ErrPalNotFound
	}
	return pal, nil
}

func (u *palUsecase) Update(userID string, req *paldto.UpdatePalRequest) (*paldomain.Pal, error) {
	pal, err := u.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pal.Name = *req.Name
	}
	if req.Personality != nil {
		pal.Personality = *req.Personality
	}
	if req.RelationshipStatus != nil {
		pal.RelationshipStatus = *req.RelationshipStatus
	}
	if req.AvatarURL != nil {
		pal.AvatarURL = req.AvatarURL
	}
	if req.Bio != nil {
		pal.Bio = req.Bio
	}
	if req.Preferences != nil {
		pal.Preferences = *req.Preferences
	}

	if err := u.palRepo.Update(pal); err != nil {
		return nil, err
	}
	return pal, nil
}

func (u *palUsecase) Delete(userID string) error {
	if _, err := u.GetByUserID(userID); err != nil {
		return err
	}
	return u.palRepo.DeleteByUserID(userID)
}
