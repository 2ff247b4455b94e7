package dto

import (
	"time"

	"siwatours/internal/entity"
)

type CreateBookingRequest struct {
	TripID            string `json:"trip_id" validate:"required,uuid4"`
	NumberOfTravelers int    `json:"number_of_travelers" validate:"required,gte=1"`
	PayOnArrival      bool   `json:"pay_on_arrival"`
	Notes             string `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
}

type BookingResponse struct {
	ID                string        `json:"id"`
	UserID            string        `json:"user_id"`
	TripID            string        `json:"trip_id"`
	Trip              *TripResponse `json:"trip,omitempty"`
	Status            string        `json:"status"`
	PaymentStatus     string        `json:"payment_status"`
	NumberOfTravelers int           `json:"number_of_travelers"`
	TotalAmount       string        `json:"total_amount"`
	Notes             string        `json:"notes,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

func BookingResponseFromEntity(booking *entity.Booking) BookingResponse {
	response := BookingResponse{
		ID:                booking.ID.String(),
		UserID:            booking.UserID.String(),
		TripID:            booking.TripID.String(),
		Status:            string(booking.Status),
		PaymentStatus:     string(booking.PaymentStatus),
		NumberOfTravelers: booking.NumberOfTravelers,
		TotalAmount:       booking.TotalAmount.StringFixed(2),
		Notes:             booking.Notes,
		CreatedAt:         booking.CreatedAt,
		UpdatedAt:         booking.UpdatedAt,
	}
	if booking.Trip.ID == booking.TripID {
		trip := TripResponseFromEntity(&booking.Trip)
		response.Trip = &trip
	}
	return response
}

func BookingResponsesFromEntities(bookings []entity.Booking) []BookingResponse {
	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, BookingResponseFromEntity(&bookings[i]))
	}
	return responses
}
