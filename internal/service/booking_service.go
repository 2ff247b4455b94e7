package service

import (
	"context"
	"encoding/json"

	"siwatours/internal/entity"
	"siwatours/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type CreateBookingInput struct {
	TripID            uuid.UUID
	NumberOfTravelers int
	PayOnArrival      bool
	Notes             string
	IPAddress         *string
}

type BookingService struct {
	bookings     repository.BookingRepository
	trips        repository.TripRepository
	securityLogs repository.SecurityLogRepository
}

func NewBookingService(
	bookings repository.BookingRepository,
	trips repository.TripRepository,
	securityLogs repository.SecurityLogRepository,
) *BookingService {
	return &BookingService{
		bookings:     bookings,
		trips:        trips,
		securityLogs: securityLogs,
	}
}

func (s *BookingService) Create(ctx context.Context, userID uuid.UUID, input CreateBookingInput) (*entity.Booking, error) {
	if input.NumberOfTravelers < 1 {
		return nil, ErrInvalidTravelers
	}

	trip, err := s.trips.FindByID(ctx, input.TripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, ErrNotFound
	}
	if trip.Status != entity.TripStatusPublished {
		return nil, ErrTripNotBookable
	}

	// the conditional decrement is the concurrency guard against overselling
	reserved, err := s.trips.ReserveSpots(ctx, trip.ID, input.NumberOfTravelers)
	if err != nil {
		return nil, err
	}
	if !reserved {
		return nil, ErrTripFull
	}

	paymentStatus := entity.PaymentStatusPending
	if input.PayOnArrival {
		paymentStatus = entity.PaymentStatusOnDemand
	}

	booking := &entity.Booking{
		UserID:            userID,
		TripID:            trip.ID,
		Status:            entity.BookingStatusPending,
		PaymentStatus:     paymentStatus,
		NumberOfTravelers: input.NumberOfTravelers,
		TotalAmount:       trip.Price.Mul(decimal.NewFromInt(int64(input.NumberOfTravelers))),
		Notes:             input.Notes,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		_ = s.trips.ReleaseSpots(ctx, trip.ID, input.NumberOfTravelers)
		return nil, err
	}

	s.log(ctx, &userID, input.IPAddress, entity.BookingCreated, map[string]any{
		"booking_id": booking.ID.String(),
		"trip_id":    trip.ID.String(),
		"travelers":  input.NumberOfTravelers,
	})
	return booking, nil
}

// Get returns a booking to its owner or to staff; everyone else is refused
// without confirming the booking exists.
func (s *BookingService) Get(ctx context.Context, id uuid.UUID, principalID uuid.UUID, role entity.UserRole) (*entity.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	if booking.UserID != principalID && !role.IsStaff() {
		return nil, ErrNotFound
	}
	return booking, nil
}

func (s *BookingService) ListMine(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Booking, error) {
	return s.bookings.ListByUser(ctx, userID, limit, offset)
}

func (s *BookingService) ListAll(ctx context.Context, limit, offset int) ([]entity.Booking, error) {
	return s.bookings.List(ctx, limit, offset)
}

func (s *BookingService) UpdateStatus(ctx context.Context, id uuid.UUID, value string, actorID uuid.UUID) (*entity.Booking, error) {
	status, ok := entity.ParseBookingStatus(value)
	if !ok {
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	if booking.Status == status {
		return booking, nil
	}
	// cancelled is terminal: its seats are already back in the pool, and
	// reviving the booking would let a later cancel release them twice
	if booking.Status == entity.BookingStatusCancelled {
		return nil, ErrInvalidStatus
	}

	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	// cancelling gives the seats back to the trip
	if status == entity.BookingStatusCancelled {
		if err := s.trips.ReleaseSpots(ctx, booking.TripID, booking.NumberOfTravelers); err != nil {
			return nil, err
		}
	}

	booking.Status = status
	s.log(ctx, &actorID, nil, entity.BookingMutated, map[string]any{
		"booking_id": booking.ID.String(),
		"status":     string(status),
	})
	return booking, nil
}

func (s *BookingService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, value string, actorID uuid.UUID) (*entity.Booking, error) {
	status, ok := entity.ParsePaymentStatus(value)
	if !ok {
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	if err := s.bookings.UpdatePaymentStatus(ctx, id, status); err != nil {
		return nil, err
	}

	booking.PaymentStatus = status
	s.log(ctx, &actorID, nil, entity.BookingMutated, map[string]any{
		"booking_id":     booking.ID.String(),
		"payment_status": string(status),
	})
	return booking, nil
}

func (s *BookingService) log(
	ctx context.Context,
	userID *uuid.UUID,
	ipAddress *string,
	action entity.SecurityAction,
	metadata map[string]any,
) {
	if s.securityLogs == nil {
		return
	}
	var payload datatypes.JSON
	if metadata != nil {
		if bytes, err := json.Marshal(metadata); err == nil {
			payload = datatypes.JSON(bytes)
		}
	}
	_ = s.securityLogs.Log(ctx, &entity.SecurityLog{
		UserID:    userID,
		IPAddress: ipAddress,
		Action:    action,
		Metadata:  payload,
	})
}
