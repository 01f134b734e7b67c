package usecase

import (
	memdomain "saypal-backend/internal/memory/domain"
	memdto "saypal-backend/internal/memory/dto"
	"saypal-backend/internal/memory/repository"
)

// MemoryUsecase owns the business rules around memories; every operation is
// scoped to the calling user.
type MemoryUsecase interface {
	Create(userID string, req *memdto.CreateMemoryRequest) (*memdomain.Memory, error)
	GetByID(userID, id string) (*memdomain.Memory, error)
	List(userID string, limit, offset int) ([]*memdomain.Memory, error)
	ListImportant(userID string, minImportance, limit int) ([]*memdomain.Memory, error)
	Update(userID, id string, req *memdto.UpdateMemoryRequest) (*memdomain.Memory, error)
	Delete(userID, id string) error
}

type memoryUsecase struct {
	memoryRepo repository.MemoryRepository
}

func NewMemoryUsecase(memoryRepo repository.MemoryRepository) MemoryUsecase {
	return &memoryUsecase{memoryRepo: memoryRepo}
}

func (u *memoryUsecase) Create(userID string, req *memdto.CreateMemoryRequest) (*memdomain.Memory, error) {
	memory := &memdomain.Memory{
		UserID:     userID,
		Content:    req.Content,
		Importance: req.Importance,
	}
	if err := u.memoryRepo.Create(memory); err != nil {
		return nil, err
	}
	return memory, nil
}

func (u *memoryUsecase) GetByID(userID, id string) (*memdomain.Memory, error) {
	return u.owned(userID, id)
}

func (u *memoryUsecase) List(userID string, limit, offset int) ([]*memdomain.Memory, error) {
	return u.memoryRepo.FindByUser(userID, limit, offset)
}

func (u *memoryUsecase) ListImportant(userID string, minImportance, limit int) ([]*memdomain.Memory, error) {
	return u.memoryRepo.FindImportant(userID, minImportance, limit)
}

func (u *memoryUsecase) Update(userID, id string, req *memdto.UpdateMemoryRequest) (*memdomain.Memory, error) {
	memory, err := u.owned(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		memory.Content = *req.Content
	}
	if req.Importance != nil {
		memory.Importance = *req.Importance
	}

	if err := u.memoryRepo.Update(memory); err != nil {
		return nil, err
	}
	return memory, nil
}

func (u *memoryUsecase) Delete(userID, id string) error {
	if _, err := u.owned(userID, id); err != nil {
		return err
	}
	return u.memoryRepo.Delete(id)
}

func (u *memoryUsecase) owned(userID, id string) (*memdomain.Memory, error) {
	memory, err := u.memoryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if memory == nil || memory.UserID != userID {
		return nil, memdomain.ErrMemoryNotFound
	}
	return memory, nil
}
