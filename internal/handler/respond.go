package handler

import (
	"github.com/labstack/echo/v4"

	"contacthub/internal/apperrors"
)

// Envelope is the success payload shape shared by every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// respondError translates a domain error into its transport response. Only
// the typed kind and a safe message cross the boundary.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
