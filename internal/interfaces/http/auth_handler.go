package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/auth"
	"github.com/jhoicas/gestion-api/internal/application/dto"
)

// AuthHandler maneja login y administración de usuarios.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login verifica credenciales y devuelve el token de sesión (público).
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		// Para el login cualquier rechazo es 401: no se distingue usuario
		// inexistente de clave incorrecta.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure(err))
	}
	return c.JSON(out)
}

// CreateUser crea un usuario (solo administradores).
func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateUser(c.UserContext(), GetUsername(c), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(auth.MsgUserCreated, out))
}

// ListUsers lista los usuarios (vista pública, sin hash ni salt).
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers(c.UserContext(), GetUsername(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(out)
}

// UpdateUser cambia clave y/o nivel de un usuario.
func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	username := c.Params("username")
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateUser(c.UserContext(), GetUsername(c), username, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.OK(auth.MsgUserUpdated, out))
}

// DeleteUser elimina un usuario.
func (h *AuthHandler) DeleteUser(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.uc.DeleteUser(c.UserContext(), GetUsername(c), username); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.OK(auth.MsgUserDeleted, nil))
}
