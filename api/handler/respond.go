package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"siwatours/internal/service"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, errorResponse{Message: err.Error()})
}

// writeServiceError maps service sentinels onto HTTP statuses. Anything
// unmapped is an unexpected failure: a generic 500 goes out and the detail
// stays server-side in the request log.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrInvalidCapacity),
		errors.Is(err, service.ErrInvalidTravelers),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidCategory):
		return writeError(c, http.StatusBadRequest, err)
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidMFACode):
		return writeError(c, http.StatusUnauthorized, err)
	case errors.Is(err, service.ErrEmailNotVerified),
		errors.Is(err, service.ErrForbidden):
		return writeError(c, http.StatusForbidden, err)
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return writeError(c, http.StatusNotFound, err)
	case errors.Is(err, service.ErrEmailAlreadyRegistered):
		return writeError(c, http.StatusConflict, err)
	case errors.Is(err, service.ErrTripFull),
		errors.Is(err, service.ErrTripNotBookable):
		return writeError(c, http.StatusUnprocessableEntity, err)
	case errors.Is(err, service.ErrMFARequired):
		return writeError(c, http.StatusPreconditionRequired, err)
	case errors.Is(err, service.ErrMFANotConfigured):
		return writeError(c, http.StatusFailedDependency, err)
	}
	c.Logger().Error(err)
	return writeError(c, http.StatusInternalServerError, errors.New("internal server error"))
}

func parseLimitOffset(c echo.Context) (int, int) {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	return limit, offset
}

func stringPtr(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
