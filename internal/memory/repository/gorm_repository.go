package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	memdomain "saypal-backend/internal/memory/domain"
)

// gormMemoryRepository implements MemoryRepository on gorm.
type gormMemoryRepository struct {
	db *gorm.DB
}

func NewGormMemoryRepository(db *gorm.DB) MemoryRepository {
	return &gormMemoryRepository{db: db}
}

func (r *gormMemoryRepository) Create(memory *memdomain.Memory) error {
	if memory.ID == "" {
		memory.ID = uuid.New().String()
	}
	memory.CreatedAt = time.Now()
	return r.db.Create(memory).Error
}

func (r *gormMemoryRepository) FindByID(id string) (*memdomain.Memory, error) {
	var memory memdomain.Memory
	err := r.db.Where("id = ?", id).First(&memory).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &memory, nil
}

func (r *gormMemoryRepository) FindByUser(userID string, limit, offset int) ([]*memdomain.Memory, error) {
	var memories []*memdomain.Memory
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&memories).Error
	return memories, err
}

func (r *gormMemoryRepository) FindImportant(userID string, minImportance, limit int) ([]*memdomain.Memory, error) {
	var memories []*memdomain.Memory
	err := r.db.Where("user_id = ? AND importance >= ?", userID, minImportance).
		Order("importance DESC").Limit(limit).Find(&memories).Error
	return memories, err
}

func (r *gormMemoryRepository) Update(memory *memdomain.Memory) error {
	return r.db.Save(memory).Error
}

func (r *gormMemoryRepository) Delete(id string) error {
	return r.db.Delete(&memdomain.Memory{}, "id = ?", id).Error
}

func (r *gormMemoryRepository) DeleteByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&memdomain.Memory{}).Error
}
