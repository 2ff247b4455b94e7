package handler

import (
	"errors"
	"net/http"

	"siwatours/api/middleware"
	"siwatours/internal/dto"
	"siwatours/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	Service  *service.BookingService
	Validate *validator.Validate
}

func NewBookingHandler(svc *service.BookingService, validate *validator.Validate) *BookingHandler {
	return &BookingHandler{Service: svc, Validate: validate}
}

func (h *BookingHandler) Create(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.CreateBookingRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	tripID, err := uuid.Parse(req.TripID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid trip id"))
	}

	booking, err := h.Service.Create(c.Request().Context(), principal.UserID, service.CreateBookingInput{
		TripID:            tripID,
		NumberOfTravelers: req.NumberOfTravelers,
		PayOnArrival:      req.PayOnArrival,
		Notes:             req.Notes,
		IPAddress:         stringPtr(c.RealIP()),
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.BookingResponseFromEntity(booking))
}

func (h *BookingHandler) ListMine(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	limit, offset := parseLimitOffset(c)
	bookings, err := h.Service.ListMine(c.Request().Context(), principal.UserID, limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.BookingResponsesFromEntities(bookings))
}

func (h *BookingHandler) Get(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid booking id"))
	}
	booking, err := h.Service.Get(c.Request().Context(), id, principal.UserID, principal.Role)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.BookingResponseFromEntity(booking))
}

func (h *BookingHandler) ListAll(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	bookings, err := h.Service.ListAll(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.BookingResponsesFromEntities(bookings))
}

// ManagerBookings backs the manager dashboard; ManagerScope has already
// pinned :id to the caller.
func (h *BookingHandler) ManagerBookings(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	bookings, err := h.Service.ListAll(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.BookingResponsesFromEntities(bookings))
}

func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid booking id"))
	}
	var req dto.UpdateBookingStatusRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	booking, err := h.Service.UpdateStatus(c.Request().Context(), id, req.Status, principal.UserID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.BookingResponseFromEntity(booking))
}

func (h *BookingHandler) UpdatePaymentStatus(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid booking id"))
	}
	var req dto.UpdatePaymentStatusRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	booking, err := h.Service.UpdatePaymentStatus(c.Request().Context(), id, req.PaymentStatus, principal.UserID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.BookingResponseFromEntity(booking))
}

func (h *BookingHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
