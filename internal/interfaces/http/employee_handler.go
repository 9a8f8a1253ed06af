package http

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/kj8726/employee-registration/internal/application/dto"
	"github.com/kj8726/employee-registration/internal/application/registration"
	"github.com/kj8726/employee-registration/internal/domain"
)

// EmployeeHandler atiende el formulario de registro y el alta de empleados.
type EmployeeHandler struct {
	uc       *registration.RegistrationUseCase
	validate *validator.Validate
	formFile string
}

// NewEmployeeHandler construye el handler de empleados.
func NewEmployeeHandler(uc *registration.RegistrationUseCase, formFile string) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, validate: validator.New(), formFile: formFile}
}

// Form godoc
// @Summary      Formulario de registro
// @Tags         employees
// @Produce      html
// @Success      200  {string}  string  "documento HTML del formulario"
// @Router       / [get]
func (h *EmployeeHandler) Form(c *fiber.Ctx) error {
	return c.SendFile(h.formFile)
}

// Register godoc
// @Summary      Registrar empleado
// @Tags         employees
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.RegisterEmployeeRequest  true  "fullName, email, employeeId, department, position, dateOfJoining"
// @Success      201   {object}  dto.RegisterEmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /register [post]
func (h *EmployeeHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
	}
	// Presencia de los seis campos: sin detalle por campo y sin tocar el almacén.
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "All fields are required"})
	}
	out, err := h.uc.RegisterEmployee(in)
	if err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: conflict.Message,
				Errors:  map[string]dto.FieldError{conflict.Field: {Msg: conflict.Message}},
			})
		}
		var invalid *domain.ValidationError
		if errors.As(err, &invalid) {
			fields := make(map[string]dto.FieldError, len(invalid.Fields))
			for field, msg := range invalid.Fields {
				fields[field] = dto.FieldError{Msg: msg}
			}
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: "Validation failed",
				Errors:  fields,
			})
		}
		// El ErrorHandler global registra el detalle y responde el 500 genérico.
		return fmt.Errorf("alta de empleado: %w", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterEmployeeResponse{
		Message:  "Employee registered successfully",
		Employee: *out,
	})
}
