package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/foodforgood-api/internal/application/auth"
	"github.com/jhoicas/foodforgood-api/internal/application/dto"
	"github.com/jhoicas/foodforgood-api/internal/domain"
)

// authRecorder es el contrato mínimo de métricas que necesita el handler de auth.
type authRecorder interface {
	RecordRegistration(userType string)
	RecordLogin(ok bool)
}

type nopAuthRecorder struct{}

func (nopAuthRecorder) RecordRegistration(string) {}
func (nopAuthRecorder) RecordLogin(bool)          {}

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	recorder authRecorder
}

// NewAuthHandler construye el handler de auth. recorder puede ser nil.
func NewAuthHandler(uc *auth.AuthUseCase, recorder authRecorder) *AuthHandler {
	if recorder == nil {
		recorder = nopAuthRecorder{}
	}
	return &AuthHandler{uc: uc, recorder: recorder}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "fullName, email, password, userType"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			// El contrato histórico del cliente espera 400 para email duplicado, no 409.
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "USER_EXISTS", Message: "el usuario ya existe"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fullName, email, password y userType (donor|ngo) son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error del servidor"})
	}
	h.recorder.RecordRegistration(out.User.UserType)
	return c.JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
		}
		// Email desconocido y password incorrecto responden idéntico:
		// un solo mensaje genérico evita enumeración de cuentas.
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			h.recorder.RecordLogin(false)
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error del servidor"})
	}
	h.recorder.RecordLogin(true)
	return c.JSON(out)
}
