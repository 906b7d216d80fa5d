package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
)

// ProviderHandler maneja las peticiones HTTP para proveedores (protegido).
type ProviderHandler struct {
	uc *usecase.ProviderUseCase
}

// NewProviderHandler construye el handler.
func NewProviderHandler(uc *usecase.ProviderUseCase) *ProviderHandler {
	return &ProviderHandler{uc: uc}
}

// Create crea un proveedor.
func (h *ProviderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProviderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUsername(c), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(usecase.MsgProviderCreated, out))
}

// Get obtiene un proveedor por id.
func (h *ProviderHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUsername(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: usecase.MsgProviderNotFound})
	}
	return c.JSON(out)
}

// List lista los proveedores.
func (h *ProviderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUsername(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(out)
}

// Update modifica un proveedor.
func (h *ProviderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProviderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetUsername(c), c.Params("id"), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.OK(usecase.MsgProviderUpdated, out))
}

// Delete elimina un proveedor.
func (h *ProviderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUsername(c), c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.OK(usecase.MsgProviderDeleted, nil))
}
