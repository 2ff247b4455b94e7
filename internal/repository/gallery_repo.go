package repository

import (
	"context"
	"errors"

	"siwatours/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryRepository interface {
	Create(ctx context.Context, image *entity.GalleryImage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GalleryImage, error)
	List(ctx context.Context, category *entity.GalleryCategory, limit, offset int) ([]entity.GalleryImage, error)
	Update(ctx context.Context, image *entity.GalleryImage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type galleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(ctx context.Context, image *entity.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *galleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GalleryImage, error) {
	var image entity.GalleryImage
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&image).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &image, err
}

func (r *galleryRepository) List(ctx context.Context, category *entity.GalleryCategory, limit, offset int) ([]entity.GalleryImage, error) {
	var images []entity.GalleryImage
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *galleryRepository) Update(ctx context.Context, image *entity.GalleryImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.GalleryImage{}).
		Error
}
