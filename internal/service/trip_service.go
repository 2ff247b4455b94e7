package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"siwatours/internal/cache"
	"siwatours/internal/entity"
	"siwatours/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	tripListCacheKey = "trips:published"
	tripCacheTTL     = 5 * time.Minute
)

type TripInput struct {
	Title          string
	Destination    string
	Description    string
	StartDate      time.Time
	EndDate        time.Time
	Price          decimal.Decimal
	MaxTravelers   int
	AvailableSpots int
	Status         string
}

type TripService struct {
	trips repository.TripRepository
	cache *cache.Client
}

func NewTripService(trips repository.TripRepository, cacheClient *cache.Client) *TripService {
	return &TripService{trips: trips, cache: cacheClient}
}

func (s *TripService) Create(ctx context.Context, input TripInput) (*entity.Trip, error) {
	trip := &entity.Trip{Status: entity.TripStatusDraft}
	if err := applyTripInput(trip, input); err != nil {
		return nil, err
	}
	if err := s.trips.Create(ctx, trip); err != nil {
		return nil, err
	}
	s.invalidate(ctx, trip.ID)
	return trip, nil
}

// Get backs the public detail endpoint: draft and archived trips are
// invisible here, so unpublished inventory cannot be probed by ID.
func (s *TripService) Get(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	if cached, _ := s.cache.Get(ctx, tripCacheKey(id)); cached != nil {
		var trip entity.Trip
		if err := json.Unmarshal(cached, &trip); err == nil && trip.Status == entity.TripStatusPublished {
			return &trip, nil
		}
	}

	trip, err := s.trips.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip == nil || trip.Status != entity.TripStatusPublished {
		return nil, ErrNotFound
	}

	if data, err := json.Marshal(trip); err == nil {
		_ = s.cache.Set(ctx, tripCacheKey(id), data, tripCacheTTL)
	}
	return trip, nil
}

// GetAny returns a trip regardless of status; staff surfaces use it.
func (s *TripService) GetAny(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	trip, err := s.trips.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, ErrNotFound
	}
	return trip, nil
}

// ListPublished serves the public catalog through the cache; cache failures
// degrade to a database read.
func (s *TripService) ListPublished(ctx context.Context) ([]entity.Trip, error) {
	if cached, _ := s.cache.Get(ctx, tripListCacheKey); cached != nil {
		var trips []entity.Trip
		if err := json.Unmarshal(cached, &trips); err == nil {
			return trips, nil
		}
	}

	trips, err := s.trips.List(ctx, true, 0, 0)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(trips); err == nil {
		_ = s.cache.Set(ctx, tripListCacheKey, data, tripCacheTTL)
	}
	return trips, nil
}

func (s *TripService) ListAll(ctx context.Context, limit, offset int) ([]entity.Trip, error) {
	return s.trips.List(ctx, false, limit, offset)
}

func (s *TripService) Update(ctx context.Context, id uuid.UUID, input TripInput) (*entity.Trip, error) {
	trip, err := s.trips.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, ErrNotFound
	}
	if err := applyTripInput(trip, input); err != nil {
		return nil, err
	}
	if err := s.trips.Update(ctx, trip); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return trip, nil
}

func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	trip, err := s.trips.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if trip == nil {
		return ErrNotFound
	}
	if err := s.trips.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *TripService) invalidate(ctx context.Context, id uuid.UUID) {
	_ = s.cache.Delete(ctx, tripListCacheKey, tripCacheKey(id))
}

func tripCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("trip:%s", id)
}

func applyTripInput(trip *entity.Trip, input TripInput) error {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Destination) == "" {
		return ErrInvalidInput
	}
	if !input.StartDate.Before(input.EndDate) {
		return ErrInvalidDateRange
	}
	if input.Price.IsNegative() {
		return ErrInvalidAmount
	}
	if input.MaxTravelers < 0 || input.AvailableSpots < 0 || input.AvailableSpots > input.MaxTravelers {
		return ErrInvalidCapacity
	}

	status := trip.Status
	if input.Status != "" {
		switch entity.TripStatus(input.Status) {
		case entity.TripStatusDraft, entity.TripStatusPublished, entity.TripStatusArchived:
			status = entity.TripStatus(input.Status)
		default:
			return ErrInvalidStatus
		}
	}

	trip.Title = strings.TrimSpace(input.Title)
	trip.Destination = strings.TrimSpace(input.Destination)
	trip.Description = input.Description
	trip.StartDate = input.StartDate
	trip.EndDate = input.EndDate
	trip.Price = input.Price
	trip.MaxTravelers = input.MaxTravelers
	trip.AvailableSpots = input.AvailableSpots
	trip.Status = status
	return nil
}
