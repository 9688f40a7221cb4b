package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/atlasworks/travelatlas/internal/adapters/providers"
	"github.com/atlasworks/travelatlas/internal/core/ports"
	"github.com/atlasworks/travelatlas/internal/core/usecases"
)

// APIError is a structured error response.
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"code"`    // Error code: bad_request, not_found, upstream_error, etc.
	Message   string `json:"message"` // Human-readable message
	RequestID string `json:"request_id,omitempty"`
}

// newError builds a JSON error response with a request ID.
func newError(c *fiber.Ctx, status int, code string, message string) error {
	reqID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(APIError{
		Status:    status,
		Code:      code,
		Message:   message,
		RequestID: reqID,
	})
}

// errBadRequest returns a 400 error.
func errBadRequest(c *fiber.Ctx, msg string) error {
	return newError(c, 400, "bad_request", msg)
}

// errNotFound returns a 404 error.
func errNotFound(c *fiber.Ctx, msg string) error {
	return newError(c, 404, "not_found", msg)
}

// errInternal returns a 500 error.
func errInternal(c *fiber.Ctx, msg string) error {
	return newError(c, 500, "internal_error", msg)
}

// errService translates upstream and usecase errors into the uniform error
// shape. Provider errors keep their status and code; an unknown provider name
// is the caller's mistake and maps to 400.
func errService(c *fiber.Ctx, err error) error {
	var unsupported *usecases.UnsupportedProviderError
	if errors.As(err, &unsupported) {
		return newError(c, 400, "unsupported_provider", unsupported.Error())
	}

	if errors.Is(err, usecases.ErrInvalidInput) {
		return errBadRequest(c, err.Error())
	}

	if errors.Is(err, ports.ErrNotFound) {
		return errNotFound(c, err.Error())
	}

	var pErr *providers.Error
	if errors.As(err, &pErr) {
		return newError(c, pErr.Status, pErr.Code, pErr.Message)
	}

	return errInternal(c, err.Error())
}
