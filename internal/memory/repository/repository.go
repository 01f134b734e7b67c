package repository

import memdomain "saypal-backend/internal/memory/domain"

// MemoryRepository owns persistence for memories. Lookups return (nil, nil)
// when no row matches.
type MemoryRepository interface {
	Create(memory *memdomain.Memory) error
	FindByID(id string) (*memdomain.Memory, error)
	FindByUser(userID string, limit, offset int) ([]*memdomain.Memory, error)

	// FindImportant returns the user's memories with importance >=
	// minImportance, most important first.
	FindImportant(userID string, minImportance, limit int) ([]*memdomain.Memory, error)

	Update(memory *memdomain.Memory) error
	Delete(id string) error
	DeleteByUser(userID string) error
}
