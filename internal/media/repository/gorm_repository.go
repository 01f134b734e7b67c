package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	mediadomain "saypal-backend/internal/media/domain"
)

// gormMediaRepository implements MediaRepository on gorm.
type gormMediaRepository struct {
	db *gorm.DB
}

func NewGormMediaRepository(db *gorm.DB) MediaRepository {
	return &gormMediaRepository{db: db}
}

func (r *gormMediaRepository) Create(media *mediadomain.Media) error {
	if media.ID == "" {
		media.ID = uuid.New().String()
	}
	media.CreatedAt = time.Now()
	media.UpdatedAt = time.Now()
	return r.db.Create(media).Error
}

func (r *gormMediaRepository) FindByID(id string) (*mediadomain.Media, error) {
	var media mediadomain.Media
	err := r.db.Where("id = ?", id).First(&media).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &media, nil
}

func (r *gormMediaRepository) List(mediaType *mediadomain.MediaType, limit, offset int) ([]*mediadomain.Media, error) {
	query := r.db.Model(&mediadomain.Media{})
	if mediaType != nil {
		query = query.Where("type = ?", *mediaType)
	}

	var media []*mediadomain.Media
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&media).Error
	return media, err
}

func (r *gormMediaRepository) Update(media *mediadomain.Media) error {
	media.UpdatedAt = time.Now()
	return r.db.Save(media).Error
}

func (r *gormMediaRepository) Delete(id string) error {
	return r.db.Delete(&mediadomain.Media{}, "id = ?", id).Error
}
