package repository

import (
	"context"
	"errors"

	"siwatours/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Booking, error)
	List(ctx context.Context, limit, offset int) ([]entity.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).
		Preload("Trip").
		Where("id = ?", id).
		First(&booking).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Booking, error) {
	var bookings []entity.Booking
	query := r.db.WithContext(ctx).
		Preload("Trip").
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) List(ctx context.Context, limit, offset int) ([]entity.Booking, error) {
	var bookings []entity.Booking
	query := r.db.WithContext(ctx).
		Preload("Trip").
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.Booking{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}

func (r *bookingRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.Booking{}).
		Where("id = ?", id).
		Update("payment_status", status).
		Error
}
