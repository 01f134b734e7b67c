package usecase

import (
	authdomain "saypal-backend/internal/auth/domain"
	authrepo "saypal-backend/internal/auth/repository"
	convrepo "saypal-backend/internal/conversation/repository"
	memrepo "saypal-backend/internal/memory/repository"
	palrepo "saypal-backend/internal/pal/repository"
	userdto "saypal-backend/internal/user/dto"
	"saypal-backend/pkg/password"
)

// UserUsecase owns account-level operations that cut across features:
// profile updates, account deletion with its cascade, and the aggregated
// view the Discord bot pulls per user.
type UserUsecase interface {
	GetByID(id string) (*authdomain.User, error)
	GetByEmail(email string) (*authdomain.User, error)
	GetByDiscordID(discordID int64) (*authdomain.User, error)
	List(limit, offset int) ([]*authdomain.User, error)
	Update(id string, req *userdto.UpdateUserRequest) (*authdomain.User, error)
	Delete(id string) error
	GetDiscordData(discordID int64) (*userdto.DiscordDataResponse, error)
}

type userUsecase struct {
	userRepo  authrepo.UserRepository
	tokenRepo authrepo.TokenRepository
	palRepo   palrepo.PalRepository
	convRepo  convrepo.ConversationRepository
	memRepo   memrepo.MemoryRepository
}

func NewUserUsecase(
	userRepo authrepo.UserRepository,
	tokenRepo authrepo.TokenRepository,
	palRepo palrepo.PalRepository,
	convRepo convrepo.ConversationRepository,
	memRepo memrepo.MemoryRepository,
) UserUsecase {
	return &userUsecase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		palRepo:   palRepo,
		convRepo:  convRepo,
		memRepo:   memRepo,
	}
}

// recentConversationLimit and the memory cutoffs mirror what the bot pulls
// into prompt context per user.
const (
	recentConversationLimit = 5
	importantMemoryMin      = 7
	importantMemoryLimit    = 10
)

func (u *userUsecase) GetByID(id string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	return user, nil
}

func (u *userUsecase) GetByEmail(email string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	return user, nil
}

func (u *userUsecase) GetByDiscordID(discordID int64) (*authdomain.User, error) {
	user, err := u.userRepo.FindByDiscordID(discordID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	return user, nil
}

func (u *userUsecase) List(limit, offset int) ([]*authdomain.User, error) {
	return u.userRepo.List(limit, offset)
}

// Update merges the explicit optional fields onto the stored user. A password
// change also revokes every refresh token, forcing other sessions to log in
// again.
func (u *userUsecase) Update(id string, req *userdto.UpdateUserRequest) (*authdomain.User, error) {
	user, err := u.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && (user.Email == nil || *req.Email != *user.Email) {
		existing, err := u.userRepo.FindByEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, authdomain.ErrEmailTaken
		}
		user.Email = req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Birthday != nil {
		user.Birthday = req.Birthday
	}
	if req.Occupation != nil {
		user.Occupation = req.Occupation
	}
	if req.RelationshipStatus != nil {
		user.RelationshipStatus = req.RelationshipStatus
	}
	if req.Interests != nil {
		user.Interests = *req.Interests
	}
	if req.PersonalityTraits != nil {
		user.PersonalityTraits = *req.PersonalityTraits
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	passwordChanged := false
	if req.Password != nil {
		hashed, err := password.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hashed
		passwordChanged = true
	}

	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	if passwordChanged {
		if err := u.tokenRepo.DeleteByUser(user.ID); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// Delete removes the account and everything hanging off it. The pal,
// conversations, messages and memories go first so no orphan rows reference
// the deleted user.
func (u *userUsecase) Delete(id string) error {
	if _, err := u.GetByID(id); err != nil {
		return err
	}
	if err := u.tokenRepo.DeleteByUser(id); err != nil {
		return err
	}
	if err := u.palRepo.DeleteByUserID(id); err != nil {
		return err
	}
	if err := u.convRepo.DeleteByUser(id); err != nil {
		return err
	}
	if err := u.memRepo.DeleteByUser(id); err != nil {
		return err
	}
	return u.userRepo.Delete(id)
}

// GetDiscordData assembles the per-user context bundle served to the bot:
// profile, pal, the active conversation, recent conversations and the
// memories important enough to surface.
func (u *userUsecase) GetDiscordData(discordID int64) (*userdto.DiscordDataResponse, error) {
	user, err := u.GetByDiscordID(discordID)
	if err != nil {
		return nil, err
	}

	pal, err := u.palRepo.FindByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	active, err := u.convRepo.FindActive(user.ID)
	if err != nil {
		return nil, err
	}
	recent, err := u.convRepo.FindByUser(user.ID, recentConversationLimit, 0)
	if err != nil {
		return nil, err
	}
	memories, err := u.memRepo.FindImportant(user.ID, importantMemoryMin, importantMemoryLimit)
	if err != nil {
		return nil, err
	}

	return &userdto.DiscordDataResponse{
		User:                user,
		Pal:                 pal,
		ActiveConversation:  active,
		RecentConversations: recent,
		ImportantMemories:   memories,
	}, nil
}
