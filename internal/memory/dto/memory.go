package dto

import memdomain "saypal-backend/internal/memory/domain"

type CreateMemoryRequest struct {
	Content    string `json:"content" binding:"required"`
	Importance int    `json:"importance" binding:"required,min=1,max=10"`
}

type UpdateMemoryRequest struct {
	Content    *string `json:"content,omitempty"`
	Importance *int    `json:"importance,omitempty" binding:"omitempty,min=1,max=10"`
}

type MemoriesResponse struct {
	Memories []*memdomain.Memory `json:"memories"`
	Limit    int                 `json:"limit"`
	Offset   int                 `json:"offset"`
}
