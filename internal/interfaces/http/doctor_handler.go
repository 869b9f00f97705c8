package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/MedApp-api/internal/application/dto"
	"github.com/jhoicas/MedApp-api/internal/application/registration"
	"github.com/jhoicas/MedApp-api/internal/application/usecase"
	"github.com/jhoicas/MedApp-api/internal/domain"
)

// DoctorHandler maneja la asignación del rol doctor y las lecturas del directorio.
type DoctorHandler struct {
	reg *registration.UseCase
	dir *usecase.DirectoryUseCase
}

// NewDoctorHandler construye el handler.
func NewDoctorHandler(reg *registration.UseCase, dir *usecase.DirectoryUseCase) *DoctorHandler {
	return &DoctorHandler{reg: reg, dir: dir}
}

// Create godoc
// @Summary      Asignar rol doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDoctorRequest  true  "user_id, specialty, license_number"
// @Success      201   {object}  dto.CreateDoctorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/doctors [post]
func (h *DoctorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDoctorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id es requerido"})
	}
	out, err := h.reg.AssignDoctor(c.Context(), in)
	if err != nil {
		return roleAssignError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar doctores
// @Tags         doctors
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DoctorResponse
// @Router       /api/doctors [get]
func (h *DoctorHandler) List(c *fiber.Ctx) error {
	out, err := h.dir.ListDoctors(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener doctor por ID
// @Tags         doctors
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del doctor"
// @Success      200  {object}  dto.DoctorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/doctors/{id} [get]
func (h *DoctorHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}
	out, err := h.dir.GetDoctor(c.Context(), int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "doctor no encontrado"})
	}
	return c.JSON(out)
}

// roleAssignError mapea los errores de asignación de rol a códigos HTTP.
func roleAssignError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: domain.ErrUserNotFound.Error()})
	case errors.Is(err, domain.ErrRoleAlreadyAssigned):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ROLE_EXISTS", Message: domain.ErrRoleAlreadyAssigned.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
