// Package response writes the service's result envelopes onto the wire.
// The envelope's status is the transport status; no translation happens here.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"keygate/internal/usecase"
)

// Envelope relays a service result verbatim, mapping its status directly
// onto the HTTP status code.
func Envelope(c echo.Context, res *usecase.Result) error {
	return c.JSON(res.Status, res)
}

// BadRequest reports a malformed request that never reached the service.
func BadRequest(c echo.Context, message string) error {
	return Envelope(c, usecase.NewResult(http.StatusBadRequest, message, nil))
}

// Unauthorized reports a missing or invalid access token.
func Unauthorized(c echo.Context, message string) error {
	return Envelope(c, usecase.NewResult(http.StatusUnauthorized, message, nil))
}

// OK reports a successful request handled outside the auth service.
func OK(c echo.Context, message string, data any) error {
	return Envelope(c, usecase.NewResult(http.StatusOK, message, data))
}
