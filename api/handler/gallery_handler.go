package handler

import (
	"errors"
	"net/http"

	"siwatours/internal/dto"
	"siwatours/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type GalleryHandler struct {
	Service  *service.GalleryService
	Validate *validator.Validate
}

func NewGalleryHandler(svc *service.GalleryService, validate *validator.Validate) *GalleryHandler {
	return &GalleryHandler{Service: svc, Validate: validate}
}

func (h *GalleryHandler) List(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	images, err := h.Service.List(c.Request().Context(), c.QueryParam("category"), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.GalleryImageResponsesFromEntities(images))
}

func (h *GalleryHandler) Create(c echo.Context) error {
	req, err := h.bindImageRequest(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	image, err := h.Service.Create(c.Request().Context(), service.GalleryImageInput{
		URL:      req.URL,
		Title:    req.Title,
		AltText:  req.AltText,
		Category: req.Category,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.GalleryImageResponseFromEntity(image))
}

func (h *GalleryHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid image id"))
	}
	req, err := h.bindImageRequest(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	image, err := h.Service.Update(c.Request().Context(), id, service.GalleryImageInput{
		URL:      req.URL,
		Title:    req.Title,
		AltText:  req.AltText,
		Category: req.Category,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.GalleryImageResponseFromEntity(image))
}

func (h *GalleryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid image id"))
	}
	if err := h.Service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *GalleryHandler) bindImageRequest(c echo.Context) (*dto.GalleryImageRequest, error) {
	var req dto.GalleryImageRequest
	if err := decodeJSON(c, &req); err != nil {
		return nil, err
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return nil, err
		}
	}
	return &req, nil
}
