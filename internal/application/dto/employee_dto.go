package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest entrada para crear un empleado. Los campos son punteros
// para distinguir "ausente" de un cero explícito (emp_no 0 o emp_sal 0 son válidos).
type CreateEmployeeRequest struct {
	EmpNo   *int64           `json:"emp_no" validate:"required"`
	EmpName *string          `json:"emp_name" validate:"required,min=1"`
	EmpSal  *decimal.Decimal `json:"emp_sal" validate:"required"`
}

// UpdateEmployeeRequest entrada parcial para actualizar: solo los campos
// presentes reemplazan los almacenados.
type UpdateEmployeeRequest struct {
	EmpNo   *int64           `json:"emp_no"`
	EmpName *string          `json:"emp_name"`
	EmpSal  *decimal.Decimal `json:"emp_sal"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	EmpNo     int64           `json:"emp_no"`
	EmpName   string          `json:"emp_name"`
	EmpSal    decimal.Decimal `json:"emp_sal"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
