package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/application/usecase"
	"github.com/jhoicas/empleados-api/internal/domain"
)

// EmployeeHandler maneja las peticiones HTTP para Employee (protegido).
// El owner sale siempre de c.Locals, nunca del body ni de la URL.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "emp_no, emp_name, emp_sal"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(ownerID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "emp_no, emp_name y emp_sal son requeridos"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un empleado con ese emp_no"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "empleado creado exitosamente", Data: out})
}

// List godoc
// @Summary      Listar empleados del usuario autenticado
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.EmployeeResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	out, err := h.uc.List(ownerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// El contrato devuelve el arreglo pelado, sin envelope.
	return c.JSON(out)
}

// GetByEmpNo godoc
// @Summary      Obtener empleado por emp_no
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        emp_no  path  int  true  "Número de empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{emp_no} [get]
func (h *EmployeeHandler) GetByEmpNo(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	empNo, err := parseEmpNo(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_EMP_NO", Message: "emp_no debe ser numérico"})
	}
	out, err := h.uc.GetByEmpNo(ownerID, empNo)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        emp_no  path  int  true  "Número de empleado"
// @Param        body    body  dto.UpdateEmployeeRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{emp_no} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	empNo, err := parseEmpNo(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_EMP_NO", Message: "emp_no debe ser numérico"})
	}
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(ownerID, empNo, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos inválidos"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un empleado con ese emp_no"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
	}
	return c.JSON(dto.MessageResponse{Message: "empleado actualizado exitosamente", Data: out})
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        emp_no  path  int  true  "Número de empleado"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{emp_no} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	empNo, err := parseEmpNo(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_EMP_NO", Message: "emp_no debe ser numérico"})
	}
	if err := h.uc.Delete(ownerID, empNo); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "empleado eliminado exitosamente"})
}

func parseEmpNo(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("emp_no"), 10, 64)
}
