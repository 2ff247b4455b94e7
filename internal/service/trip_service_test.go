package service

import (
	"context"
	"testing"
	"time"

	"siwatours/internal/cache"
	"siwatours/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validTripInput() TripInput {
	return TripInput{
		Title:          "Desert Safari",
		Destination:    "Siwa",
		Description:    "Three days in the Great Sand Sea",
		StartDate:      time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC),
		Price:          decimal.RequireFromString("320.00"),
		MaxTravelers:   10,
		AvailableSpots: 10,
		Status:         "published",
	}
}

func TestCreateTrip_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TripInput)
		wantErr error
	}{
		{
			name:    "blank title",
			mutate:  func(in *TripInput) { in.Title = "  " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "blank destination",
			mutate:  func(in *TripInput) { in.Destination = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name: "start after end",
			mutate: func(in *TripInput) {
				in.StartDate = in.EndDate.Add(24 * time.Hour)
			},
			wantErr: ErrInvalidDateRange,
		},
		{
			name: "start equals end",
			mutate: func(in *TripInput) {
				in.StartDate = in.EndDate
			},
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "negative price",
			mutate:  func(in *TripInput) { in.Price = decimal.RequireFromString("-1") },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "spots above capacity",
			mutate:  func(in *TripInput) { in.AvailableSpots = in.MaxTravelers + 1 },
			wantErr: ErrInvalidCapacity,
		},
		{
			name:    "negative capacity",
			mutate:  func(in *TripInput) { in.MaxTravelers = -1 },
			wantErr: ErrInvalidCapacity,
		},
		{
			name:    "unknown status",
			mutate:  func(in *TripInput) { in.Status = "live" },
			wantErr: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trips := new(MockTripRepository)
			svc := NewTripService(trips, cache.New("", "", 0))

			input := validTripInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)

			assert.ErrorIs(t, err, tt.wantErr)
			trips.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateTrip_Success(t *testing.T) {
	trips := new(MockTripRepository)
	svc := NewTripService(trips, cache.New("", "", 0))

	trips.On("Create", mock.Anything, mock.AnythingOfType("*entity.Trip")).Return(nil)

	trip, err := svc.Create(context.Background(), validTripInput())

	assert.NoError(t, err)
	assert.Equal(t, "Desert Safari", trip.Title)
	assert.Equal(t, entity.TripStatusPublished, trip.Status)
	assert.Equal(t, 10, trip.AvailableSpots)
}

func TestGetTrip_MissOnEmptyCache(t *testing.T) {
	trips := new(MockTripRepository)
	svc := NewTripService(trips, cache.New("", "", 0))

	id := uuid.New()
	trips.On("FindByID", mock.Anything, id).Return(nil, nil)

	_, err := svc.Get(context.Background(), id)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetTrip_HidesUnpublishedFromPublic(t *testing.T) {
	for _, status := range []entity.TripStatus{entity.TripStatusDraft, entity.TripStatusArchived} {
		t.Run(string(status), func(t *testing.T) {
			trips := new(MockTripRepository)
			svc := NewTripService(trips, cache.New("", "", 0))

			trip := &entity.Trip{ID: uuid.New(), Title: "Unlisted Expedition", Status: status}
			trips.On("FindByID", mock.Anything, trip.ID).Return(trip, nil)

			_, err := svc.Get(context.Background(), trip.ID)

			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestGetAnyTrip_ReturnsDraftForStaff(t *testing.T) {
	trips := new(MockTripRepository)
	svc := NewTripService(trips, cache.New("", "", 0))

	trip := &entity.Trip{ID: uuid.New(), Title: "Unlisted Expedition", Status: entity.TripStatusDraft}
	trips.On("FindByID", mock.Anything, trip.ID).Return(trip, nil)

	got, err := svc.GetAny(context.Background(), trip.ID)

	assert.NoError(t, err)
	assert.Equal(t, entity.TripStatusDraft, got.Status)
}

func TestListPublished_FallsThroughToRepo(t *testing.T) {
	trips := new(MockTripRepository)
	svc := NewTripService(trips, cache.New("", "", 0))

	stored := []entity.Trip{{ID: uuid.New(), Title: "Salt Lakes Day Trip", Status: entity.TripStatusPublished}}
	trips.On("List", mock.Anything, true, 0, 0).Return(stored, nil)

	got, err := svc.ListPublished(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Salt Lakes Day Trip", got[0].Title)
}

func TestUpdateTrip_PreservesStatusWhenOmitted(t *testing.T) {
	trips := new(MockTripRepository)
	svc := NewTripService(trips, cache.New("", "", 0))

	existing := &entity.Trip{ID: uuid.New(), Status: entity.TripStatusArchived}
	trips.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	trips.On("Update", mock.Anything, existing).Return(nil)

	input := validTripInput()
	input.Status = ""

	updated, err := svc.Update(context.Background(), existing.ID, input)

	assert.NoError(t, err)
	assert.Equal(t, entity.TripStatusArchived, updated.Status)
}

func TestDeleteTrip_Unknown(t *testing.T) {
	trips := new(MockTripRepository)
	svc := NewTripService(trips, cache.New("", "", 0))

	id := uuid.New()
	trips.On("FindByID", mock.Anything, id).Return(nil, nil)

	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, ErrNotFound)
	trips.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
