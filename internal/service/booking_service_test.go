package service

import (
	"context"
	"testing"
	"time"

	"siwatours/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func publishedTrip(price string, available int) *entity.Trip {
	return &entity.Trip{
		ID:             uuid.New(),
		Title:          "Siwa Oasis Escape",
		Destination:    "Siwa",
		Price:          decimal.RequireFromString(price),
		StartDate:      time.Now().Add(7 * 24 * time.Hour),
		EndDate:        time.Now().Add(10 * 24 * time.Hour),
		MaxTravelers:   12,
		AvailableSpots: available,
		Status:         entity.TripStatusPublished,
	}
}

func TestCreateBooking_InvalidTravelers(t *testing.T) {
	trips := new(MockTripRepository)
	svc := NewBookingService(new(MockBookingRepository), trips, nil)

	_, err := svc.Create(context.Background(), uuid.New(), CreateBookingInput{
		TripID:            uuid.New(),
		NumberOfTravelers: 0,
	})

	assert.ErrorIs(t, err, ErrInvalidTravelers)
	trips.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCreateBooking_UnknownTrip(t *testing.T) {
	trips := new(MockTripRepository)
	svc := NewBookingService(new(MockBookingRepository), trips, nil)

	tripID := uuid.New()
	trips.On("FindByID", mock.Anything, tripID).Return(nil, nil)

	_, err := svc.Create(context.Background(), uuid.New(), CreateBookingInput{
		TripID:            tripID,
		NumberOfTravelers: 2,
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateBooking_TripNotPublished(t *testing.T) {
	trips := new(MockTripRepository)
	svc := NewBookingService(new(MockBookingRepository), trips, nil)

	trip := publishedTrip("100.00", 5)
	trip.Status = entity.TripStatusDraft
	trips.On("FindByID", mock.Anything, trip.ID).Return(trip, nil)

	_, err := svc.Create(context.Background(), uuid.New(), CreateBookingInput{
		TripID:            trip.ID,
		NumberOfTravelers: 2,
	})

	assert.ErrorIs(t, err, ErrTripNotBookable)
	trips.AssertNotCalled(t, "ReserveSpots", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_TripFull(t *testing.T) {
	trips := new(MockTripRepository)
	bookings := new(MockBookingRepository)
	svc := NewBookingService(bookings, trips, nil)

	trip := publishedTrip("100.00", 1)
	trips.On("FindByID", mock.Anything, trip.ID).Return(trip, nil)
	trips.On("ReserveSpots", mock.Anything, trip.ID, 3).Return(false, nil)

	_, err := svc.Create(context.Background(), uuid.New(), CreateBookingInput{
		TripID:            trip.ID,
		NumberOfTravelers: 3,
	})

	assert.ErrorIs(t, err, ErrTripFull)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_ComputesTotalAmount(t *testing.T) {
	trips := new(MockTripRepository)
	bookings := new(MockBookingRepository)
	svc := NewBookingService(bookings, trips, nil)

	trip := publishedTrip("149.50", 8)
	trips.On("FindByID", mock.Anything, trip.ID).Return(trip, nil)
	trips.On("ReserveSpots", mock.Anything, trip.ID, 3).Return(true, nil)
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)

	userID := uuid.New()
	booking, err := svc.Create(context.Background(), userID, CreateBookingInput{
		TripID:            trip.ID,
		NumberOfTravelers: 3,
		PayOnArrival:      true,
	})

	assert.NoError(t, err)
	assert.Equal(t, userID, booking.UserID)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, entity.PaymentStatusOnDemand, booking.PaymentStatus)
	assert.True(t, booking.TotalAmount.Equal(decimal.RequireFromString("448.50")),
		"total amount = %s", booking.TotalAmount)
}

func TestCreateBooking_ReleasesSpotsWhenPersistFails(t *testing.T) {
	trips := new(MockTripRepository)
	bookings := new(MockBookingRepository)
	svc := NewBookingService(bookings, trips, nil)

	trip := publishedTrip("100.00", 8)
	trips.On("FindByID", mock.Anything, trip.ID).Return(trip, nil)
	trips.On("ReserveSpots", mock.Anything, trip.ID, 2).Return(true, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)
	trips.On("ReleaseSpots", mock.Anything, trip.ID, 2).Return(nil)

	_, err := svc.Create(context.Background(), uuid.New(), CreateBookingInput{
		TripID:            trip.ID,
		NumberOfTravelers: 2,
	})

	assert.Error(t, err)
	trips.AssertCalled(t, "ReleaseSpots", mock.Anything, trip.ID, 2)
}

func TestGetBooking_OwnerAndStaffAccess(t *testing.T) {
	ownerID := uuid.New()
	booking := &entity.Booking{ID: uuid.New(), UserID: ownerID}

	tests := []struct {
		name        string
		principalID uuid.UUID
		role        entity.UserRole
		wantErr     error
	}{
		{name: "owner", principalID: ownerID, role: entity.UserRoleUser},
		{name: "admin", principalID: uuid.New(), role: entity.UserRoleAdmin},
		{name: "manager", principalID: uuid.New(), role: entity.UserRoleManager},
		{name: "other user", principalID: uuid.New(), role: entity.UserRoleUser, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := new(MockBookingRepository)
			bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
			svc := NewBookingService(bookings, new(MockTripRepository), nil)

			got, err := svc.Get(context.Background(), booking.ID, tt.principalID, tt.role)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, booking.ID, got.ID)
			}
		})
	}
}

func TestUpdateBookingStatus_InvalidValue(t *testing.T) {
	bookings := new(MockBookingRepository)
	svc := NewBookingService(bookings, new(MockTripRepository), nil)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), "shipped", uuid.New())

	assert.ErrorIs(t, err, ErrInvalidStatus)
	bookings.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdateBookingStatus_CancelReleasesSpots(t *testing.T) {
	bookings := new(MockBookingRepository)
	trips := new(MockTripRepository)
	svc := NewBookingService(bookings, trips, nil)

	booking := &entity.Booking{
		ID:                uuid.New(),
		UserID:            uuid.New(),
		TripID:            uuid.New(),
		Status:            entity.BookingStatusConfirmed,
		NumberOfTravelers: 4,
	}
	bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	bookings.On("UpdateStatus", mock.Anything, booking.ID, entity.BookingStatusCancelled).Return(nil)
	trips.On("ReleaseSpots", mock.Anything, booking.TripID, 4).Return(nil)

	updated, err := svc.UpdateStatus(context.Background(), booking.ID, "cancelled", uuid.New())

	assert.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, updated.Status)
	trips.AssertExpectations(t)
}

func TestUpdateBookingStatus_ConfirmKeepsSpots(t *testing.T) {
	bookings := new(MockBookingRepository)
	trips := new(MockTripRepository)
	svc := NewBookingService(bookings, trips, nil)

	booking := &entity.Booking{
		ID:                uuid.New(),
		UserID:            uuid.New(),
		TripID:            uuid.New(),
		Status:            entity.BookingStatusPending,
		NumberOfTravelers: 2,
	}
	bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	bookings.On("UpdateStatus", mock.Anything, booking.ID, entity.BookingStatusConfirmed).Return(nil)

	updated, err := svc.UpdateStatus(context.Background(), booking.ID, "confirmed", uuid.New())

	assert.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, updated.Status)
	trips.AssertNotCalled(t, "ReleaseSpots", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBookingStatus_CancelledIsTerminal(t *testing.T) {
	bookings := new(MockBookingRepository)
	trips := new(MockTripRepository)
	svc := NewBookingService(bookings, trips, nil)

	booking := &entity.Booking{
		ID:                uuid.New(),
		UserID:            uuid.New(),
		TripID:            uuid.New(),
		Status:            entity.BookingStatusCancelled,
		NumberOfTravelers: 3,
	}
	bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	// reviving a cancelled booking would leave its released seats double-counted
	_, err := svc.UpdateStatus(context.Background(), booking.ID, "confirmed", uuid.New())
	assert.ErrorIs(t, err, ErrInvalidStatus)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)

	// re-cancelling is a no-op, not a second release
	updated, err := svc.UpdateStatus(context.Background(), booking.ID, "cancelled", uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, updated.Status)
	trips.AssertNotCalled(t, "ReleaseSpots", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePaymentStatus(t *testing.T) {
	bookings := new(MockBookingRepository)
	svc := NewBookingService(bookings, new(MockTripRepository), nil)

	booking := &entity.Booking{ID: uuid.New(), UserID: uuid.New(), PaymentStatus: entity.PaymentStatusPending}
	bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	bookings.On("UpdatePaymentStatus", mock.Anything, booking.ID, entity.PaymentStatusPaid).Return(nil)

	updated, err := svc.UpdatePaymentStatus(context.Background(), booking.ID, "paid", uuid.New())

	assert.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, updated.PaymentStatus)

	_, err = svc.UpdatePaymentStatus(context.Background(), booking.ID, "declined", uuid.New())
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
