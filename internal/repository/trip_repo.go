package repository

import (
	"context"
	"errors"

	"siwatours/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TripRepository interface {
	Create(ctx context.Context, trip *entity.Trip) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error)
	List(ctx context.Context, publishedOnly bool, limit, offset int) ([]entity.Trip, error)
	Update(ctx context.Context, trip *entity.Trip) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReserveSpots(ctx context.Context, tripID uuid.UUID, count int) (bool, error)
	ReleaseSpots(ctx context.Context, tripID uuid.UUID, count int) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *entity.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	var trip entity.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&trip).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &trip, err
}

func (r *tripRepository) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]entity.Trip, error) {
	var trips []entity.Trip
	query := r.db.WithContext(ctx).Order("start_date ASC")
	if publishedOnly {
		query = query.Where("status = ?", entity.TripStatusPublished)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *entity.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Trip{}).
		Error
}

// ReserveSpots decrements available_spots only while enough remain, so two
// concurrent bookings cannot oversell the trip.
func (r *tripRepository) ReserveSpots(ctx context.Context, tripID uuid.UUID, count int) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Trip{}).
		Where("id = ? AND available_spots >= ?", tripID, count).
		Update("available_spots", gorm.Expr("available_spots - ?", count))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *tripRepository) ReleaseSpots(ctx context.Context, tripID uuid.UUID, count int) error {
	return r.db.WithContext(ctx).
		Model(&entity.Trip{}).
		Where("id = ?", tripID).
		Updates(map[string]any{
			"available_spots": gorm.Expr("LEAST(available_spots + ?, max_travelers)", count),
		}).
		Error
}
