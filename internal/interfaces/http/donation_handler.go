package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/foodforgood-api/internal/application/dto"
	"github.com/jhoicas/foodforgood-api/internal/application/usecase"
	"github.com/jhoicas/foodforgood-api/internal/domain"
)

// DonationHandler maneja las peticiones HTTP para Donation (protegido).
type DonationHandler struct {
	uc *usecase.DonationUseCase
}

// NewDonationHandler construye el handler.
func NewDonationHandler(uc *usecase.DonationUseCase) *DonationHandler {
	return &DonationHandler{uc: uc}
}

// Create godoc
// @Summary      Publicar donación
// @Tags         donations
// @Security     AuthToken
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDonationRequest  true  "Datos de la donación"
// @Success      200   {object}  dto.DonationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/donations [post]
func (h *DonationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDonationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return donationError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar donaciones (ONG: todas; donante: propias)
// @Tags         donations
// @Security     AuthToken
// @Produce      json
// @Success      200  {array}   dto.DonationResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/donations [get]
func (h *DonationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		return donationError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener donación por ID
// @Tags         donations
// @Security     AuthToken
// @Produce      json
// @Param        id   path  string  true  "ID de la donación"
// @Success      200  {object}  dto.DonationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/donations/{id} [get]
func (h *DonationHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(GetUserID(c), id)
	if err != nil {
		return donationError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una donación
// @Tags         donations
// @Security     AuthToken
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la donación"
// @Param        body  body  dto.UpdateStatusRequest  true  "status: pending|accepted|completed"
// @Success      200   {object}  dto.DonationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/donations/{id} [put]
func (h *DonationHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(GetUserID(c), id, in.Status)
	if err != nil {
		return donationError(c, err)
	}
	return c.JSON(out)
}

// donationError mapea errores de dominio del flujo de donaciones a HTTP.
func donationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		// El token validó pero su usuario ya no resuelve en el store.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNKNOWN_USER", Message: "el usuario del token no existe"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol del usuario no permite esta operación"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "foodName, quantity, description, pickupAddress y expiryDate son requeridos; status debe ser pending, accepted o completed"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "donación no encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error del servidor"})
	}
}
