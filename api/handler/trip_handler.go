package handler

import (
	"errors"
	"net/http"

	"siwatours/internal/dto"
	"siwatours/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type TripHandler struct {
	Service  *service.TripService
	Validate *validator.Validate
}

func NewTripHandler(svc *service.TripService, validate *validator.Validate) *TripHandler {
	return &TripHandler{Service: svc, Validate: validate}
}

func (h *TripHandler) List(c echo.Context) error {
	trips, err := h.Service.ListPublished(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.TripResponsesFromEntities(trips))
}

func (h *TripHandler) ListAll(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	trips, err := h.Service.ListAll(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.TripResponsesFromEntities(trips))
}

func (h *TripHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid trip id"))
	}
	trip, err := h.Service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.TripResponseFromEntity(trip))
}

// AdminGet serves the staff detail view, drafts and archived included.
func (h *TripHandler) AdminGet(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid trip id"))
	}
	trip, err := h.Service.GetAny(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.TripResponseFromEntity(trip))
}

func (h *TripHandler) Create(c echo.Context) error {
	input, err := h.bindTripInput(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	trip, err := h.Service.Create(c.Request().Context(), *input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.TripResponseFromEntity(trip))
}

func (h *TripHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid trip id"))
	}
	input, err := h.bindTripInput(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	trip, err := h.Service.Update(c.Request().Context(), id, *input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.TripResponseFromEntity(trip))
}

func (h *TripHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid trip id"))
	}
	if err := h.Service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TripHandler) bindTripInput(c echo.Context) (*service.TripInput, error) {
	var req dto.TripRequest
	if err := decodeJSON(c, &req); err != nil {
		return nil, err
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return nil, err
		}
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, errors.New("invalid price")
	}
	return &service.TripInput{
		Title:          req.Title,
		Destination:    req.Destination,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Price:          price,
		MaxTravelers:   req.MaxTravelers,
		AvailableSpots: req.AvailableSpots,
		Status:         req.Status,
	}, nil
}
