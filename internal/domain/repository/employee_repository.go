package repository

import "github.com/jhoicas/empleados-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// Toda operación está scoped por ownerID; GetByOwnerAndEmpNo devuelve (nil, nil)
// cuando no hay coincidencia y Delete devuelve domain.ErrNotFound si no borró nada.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByOwnerAndEmpNo(ownerID string, empNo int64) (*entity.Employee, error)
	ListByOwner(ownerID string) ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(ownerID string, empNo int64) error
}
