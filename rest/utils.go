package rest

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"finconf/domain"
	"finconf/utils/errors"
	"finconf/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError maps domain sentinels onto the API's status codes.
// Anything else is a store-level failure: logged with full detail
// (AppError code, cause and context included), answered with a generic
// message only.
func handleError(c echo.Context, err error, operation string) error {
	switch {
	case stderrors.Is(err, domain.ErrInvalidPresentationID):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid presentation ID"})
	case stderrors.Is(err, domain.ErrPresentationNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Presentation not found"})
	case stderrors.Is(err, domain.ErrCompanyNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "No presentations found for this company"})
	default:
		errors.LogError(logger.Logger, err, operation)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// queryParamInt reads an integer query parameter, falling back to the
// default when absent or unparseable. Bad numeric input is never an
// error on this surface.
func queryParamInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// pathParamInt reads an integer path parameter with the same lenient
// fallback behavior.
func pathParamInt(c echo.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return fallback
	}
	return value
}
