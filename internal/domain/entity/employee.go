package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa un registro de empleado perteneciente a un usuario.
// EmpNo es único por dueño (dos usuarios pueden tener el mismo EmpNo sin colisión).
type Employee struct {
	ID        string
	OwnerID   string // usuario dueño del registro; toda consulta filtra por este campo
	EmpNo     int64
	EmpName   string
	EmpSal    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
