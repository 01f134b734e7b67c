package dto

import mediadomain "saypal-backend/internal/media/domain"

type CreateMediaRequest struct {
	URL         string                 `json:"url" binding:"required,url"`
	Type        mediadomain.MediaType  `json:"type" binding:"required,oneof=image video audio gif"`
	Title       *string                `json:"title,omitempty"`
	Description *string                `json:"description,omitempty"`
}

type UpdateMediaRequest struct {
	URL         *string                `json:"url,omitempty" binding:"omitempty,url"`
	Type        *mediadomain.MediaType `json:"type,omitempty" binding:"omitempty,oneof=image video audio gif"`
	Title       *string                `json:"title,omitempty"`
	Description *string                `json:"description,omitempty"`
}

type MediaListResponse struct {
	Media  []*mediadomain.Media `json:"media"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}
