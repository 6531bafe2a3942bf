package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bhortijuddho/admission-svc/internal/apperr"
)

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{"data": data})
}

// ResponseFromError maps the service error classes to HTTP statuses.
func ResponseFromError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrNotAuthenticated):
		status = fiber.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, apperr.ErrPersistence):
		status = fiber.StatusInternalServerError
	}
	return ResponseError(ctx, status, err.Error())
}
