package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	paldomain "saypal-backend/internal/pal/domain"
)

// gormPalRepository implements PalRepository on gorm.
type gormPalRepository struct {
	db *gorm.DB
}

func NewGormPalRepository(db *gorm.DB) PalRepository {
	return &gormPalRepository{db: db}
}

func (r *gormPalRepository) Create(pal *paldomain.Pal) error {
	if pal.ID == "" {
		pal.ID = uuid.New().String()
	}
	pal.CreatedAt = time.Now()
	pal.UpdatedAt = time.Now()
	return r.db.Create(pal).Error
}

func (r *gormPalRepository) FindByUserID(userID string) (*paldomain.Pal, error) {
	return r.findOne("user_id = ?", userID)
}

// FindByDiscordID resolves a pal through its owner's Discord account, so the
// Discord bot can address the pal without knowing internal user ids.
func (r *gormPalRepository) FindByDiscordID(discordID int64) (*paldomain.Pal, error) {
	var pal paldomain.Pal
	err := r.db.Joins("JOIN users ON users.id = pals.user_id").
		Where("users.discord_id = ?", discordID).First(&pal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pal, nil
}

func (r *gormPalRepository) findOne(query string, arg any) (*paldomain.Pal, error) {
	var pal paldomain.Pal
	err := r.db.Where(query, arg).First(&pal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pal, nil
}

func (r *gormPalRepository) Update(pal *paldomain.Pal) error {
	pal.UpdatedAt = time.Now()
	return r.db.Save(pal).Error
}

func (r *gormPalRepository) DeleteByUserID(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&paldomain.Pal{}).Error
}
