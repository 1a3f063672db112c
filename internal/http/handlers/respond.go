package handlers

import (
	"errors"

	applog "rewear/internal/log"
	"rewear/internal/services"

	"github.com/gofiber/fiber/v2"
)

// envelope is the uniform response shape for every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(envelope{Success: true, Message: message, Data: data})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(envelope{Success: false, Message: message})
}

// failErr maps a service error to the envelope. Unrecognized errors are
// logged and surfaced as a generic 500.
func failErr(c *fiber.Ctx, err error, action, fallback string) error {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrConflict):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrBadCreds):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return fail(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	}
	applog.Error(c, action, err, nil)
	return fail(c, fiber.StatusInternalServerError, fallback)
}
