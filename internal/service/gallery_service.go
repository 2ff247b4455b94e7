package service

import (
	"context"
	"strings"

	"siwatours/internal/entity"
	"siwatours/internal/repository"

	"github.com/google/uuid"
)

type GalleryImageInput struct {
	URL      string
	Title    string
	AltText  string
	Category string
}

type GalleryService struct {
	images repository.GalleryRepository
}

func NewGalleryService(images repository.GalleryRepository) *GalleryService {
	return &GalleryService{images: images}
}

func (s *GalleryService) Create(ctx context.Context, input GalleryImageInput) (*entity.GalleryImage, error) {
	image := &entity.GalleryImage{}
	if err := applyGalleryInput(image, input); err != nil {
		return nil, err
	}
	if err := s.images.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *GalleryService) List(ctx context.Context, category string, limit, offset int) ([]entity.GalleryImage, error) {
	var filter *entity.GalleryCategory
	if category != "" {
		parsed, ok := entity.ParseGalleryCategory(category)
		if !ok {
			return nil, ErrInvalidCategory
		}
		filter = &parsed
	}
	return s.images.List(ctx, filter, limit, offset)
}

func (s *GalleryService) Update(ctx context.Context, id uuid.UUID, input GalleryImageInput) (*entity.GalleryImage, error) {
	image, err := s.images.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, ErrNotFound
	}
	if err := applyGalleryInput(image, input); err != nil {
		return nil, err
	}
	if err := s.images.Update(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *GalleryService) Delete(ctx context.Context, id uuid.UUID) error {
	image, err := s.images.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if image == nil {
		return ErrNotFound
	}
	return s.images.Delete(ctx, id)
}

func applyGalleryInput(image *entity.GalleryImage, input GalleryImageInput) error {
	if strings.TrimSpace(input.URL) == "" || strings.TrimSpace(input.Title) == "" {
		return ErrInvalidInput
	}
	category, ok := entity.ParseGalleryCategory(input.Category)
	if !ok {
		return ErrInvalidCategory
	}

	image.URL = strings.TrimSpace(input.URL)
	image.Title = strings.TrimSpace(input.Title)
	image.AltText = strings.TrimSpace(input.AltText)
	image.Category = category
	return nil
}
