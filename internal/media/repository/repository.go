package repository

import mediadomain "saypal-backend/internal/media/domain"

// MediaRepository owns persistence for media references.
type MediaRepository interface {
	Create(media *mediadomain.Media) error
	FindByID(id string) (*mediadomain.Media, error)
	List(mediaType *mediadomain.MediaType, limit, offset int) ([]*mediadomain.Media, error)
	Update(media *mediadomain.Media) error
	Delete(id string) error
}
