package dto

import (
	"time"

	"siwatours/internal/entity"
)

type TripRequest struct {
	Title          string    `json:"title" validate:"required"`
	Destination    string    `json:"destination" validate:"required"`
	Description    string    `json:"description" validate:"omitempty"`
	StartDate      time.Time `json:"start_date" validate:"required"`
	EndDate        time.Time `json:"end_date" validate:"required"`
	Price          string    `json:"price" validate:"required"`
	MaxTravelers   int       `json:"max_travelers" validate:"gte=0"`
	AvailableSpots int       `json:"available_spots" validate:"gte=0"`
	Status         string    `json:"status" validate:"omitempty,oneof=draft published archived"`
}

type TripResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Destination    string    `json:"destination"`
	Description    string    `json:"description,omitempty"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Price          string    `json:"price"`
	MaxTravelers   int       `json:"max_travelers"`
	AvailableSpots int       `json:"available_spots"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func TripResponseFromEntity(trip *entity.Trip) TripResponse {
	return TripResponse{
		ID:             trip.ID.String(),
		Title:          trip.Title,
		Destination:    trip.Destination,
		Description:    trip.Description,
		StartDate:      trip.StartDate,
		EndDate:        trip.EndDate,
		Price:          trip.Price.StringFixed(2),
		MaxTravelers:   trip.MaxTravelers,
		AvailableSpots: trip.AvailableSpots,
		Status:         string(trip.Status),
		CreatedAt:      trip.CreatedAt,
		UpdatedAt:      trip.UpdatedAt,
	}
}

func TripResponsesFromEntities(trips []entity.Trip) []TripResponse {
	responses := make([]TripResponse, 0, len(trips))
	for i := range trips {
		responses = append(responses, TripResponseFromEntity(&trips[i]))
	}
	return responses
}
