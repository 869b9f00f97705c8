package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/MedApp-api/internal/application/dto"
	"github.com/jhoicas/MedApp-api/internal/application/registration"
	"github.com/jhoicas/MedApp-api/internal/application/usecase"
)

// PatientHandler maneja la asignación del rol patient y las lecturas del directorio.
type PatientHandler struct {
	reg *registration.UseCase
	dir *usecase.DirectoryUseCase
}

// NewPatientHandler construye el handler.
func NewPatientHandler(reg *registration.UseCase, dir *usecase.DirectoryUseCase) *PatientHandler {
	return &PatientHandler{reg: reg, dir: dir}
}

// Create godoc
// @Summary      Asignar rol patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePatientRequest  true  "user_id, date_of_birth, insurance_provider"
// @Success      201   {object}  dto.CreatePatientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/patients [post]
func (h *PatientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePatientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id es requerido"})
	}
	out, err := h.reg.AssignPatient(c.Context(), in)
	if err != nil {
		return roleAssignError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pacientes
// @Tags         patients
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PatientResponse
// @Router       /api/patients [get]
func (h *PatientHandler) List(c *fiber.Ctx) error {
	out, err := h.dir.ListPatients(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener paciente por ID
// @Tags         patients
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del paciente"
// @Success      200  {object}  dto.PatientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/patients/{id} [get]
func (h *PatientHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}
	out, err := h.dir.GetPatient(c.Context(), int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "paciente no encontrado"})
	}
	return c.JSON(out)
}
