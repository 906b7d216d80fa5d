package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
)

// statusFromErr traduce la clase del error de dominio al status HTTP.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrReference):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAuthorization):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrCanceled):
		return fiber.StatusRequestTimeout
	default:
		return fiber.StatusInternalServerError
	}
}

// respondErr responde el error de dominio con su status y el mensaje para el
// usuario; nunca filtra el error de almacenamiento subyacente.
func respondErr(c *fiber.Ctx, err error) error {
	return c.Status(statusFromErr(err)).JSON(dto.Failure(err))
}
