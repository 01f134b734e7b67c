package usecase

import (
	mediadomain "saypal-backend/internal/media/domain"
	mediadto "saypal-backend/internal/media/dto"
	"saypal-backend/internal/media/repository"
)

// MediaUsecase owns the business rules around the shared media catalog.
type MediaUsecase interface {
	Create(req *mediadto.CreateMediaRequest) (*mediadomain.Media, error)
	GetByID(id string) (*mediadomain.Media, error)
	List(mediaType *mediadomain.MediaType, limit, offset int) ([]*mediadomain.Media, error)
	Update(id string, req *mediadto.UpdateMediaRequest) (*mediadomain.Media, error)
	Delete(id string) error
}

type mediaUsecase struct {
	mediaRepo repository.MediaRepository
}

func NewMediaUsecase(mediaRepo repository.MediaRepository) MediaUsecase {
	return &mediaUsecase{mediaRepo: mediaRepo}
}

func (u *mediaUsecase) Create(req *mediadto.CreateMediaRequest) (*mediadomain.Media, error) {
	media := &mediadomain.Media{
		URL:         req.URL,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := u.mediaRepo.Create(media); err != nil {
		return nil, err
	}
	return media, nil
}

func (u *mediaUsecase) GetByID(id string) (*mediadomain.Media, error) {
	media, err := u.mediaRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, mediadomain.ErrMediaNotFound
	}
	return media, nil
}

func (u *mediaUsecase) List(mediaType *mediadomain.MediaType, limit, offset int) ([]*mediadomain.Media, error) {
	return u.mediaRepo.List(mediaType, limit, offset)
}

func (u *mediaUsecase) Update(id string, req *mediadto.UpdateMediaRequest) (*mediadomain.Media, error) {
	media, err := u.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.URL != nil {
		media.URL = *req.URL
	}
	if req.Type != nil {
		media.Type = *req.Type
	}
	if req.Title != nil {
		media.Title = req.Title
	}
	if req.Description != nil {
		media.Description = req.Description
	}

	if err := u.mediaRepo.Update(media); err != nil {
		return nil, err
	}
	return media, nil
}

func (u *mediaUsecase) Delete(id string) error {
	if _, err := u.GetByID(id); err != nil {
		return err
	}
	return u.mediaRepo.Delete(id)
}
