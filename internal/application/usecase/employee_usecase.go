package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados. Toda operación está
// scoped al usuario dueño: el ownerID entra en cada consulta, por lo que un
// usuario no puede ver ni tocar registros ajenos.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create crea un registro de empleado para el dueño. Devuelve ErrInvalidInput
// si falta algún campo requerido y ErrDuplicate si el emp_no ya existe para
// ese dueño (la unicidad de emp_no es por dueño, no global).
func (uc *EmployeeUseCase) Create(ownerID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.EmpNo == nil || in.EmpName == nil || in.EmpSal == nil {
		return nil, domain.ErrInvalidInput
	}
	if *in.EmpName == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByOwnerAndEmpNo(ownerID, *in.EmpNo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		EmpNo:     *in.EmpNo,
		EmpName:   *in.EmpName,
		EmpSal:    *in.EmpSal,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByEmpNo obtiene el empleado (ownerID, empNo). Devuelve (nil, nil) si no existe.
func (uc *EmployeeUseCase) GetByEmpNo(ownerID string, empNo int64) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByOwnerAndEmpNo(ownerID, empNo)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	return toEmployeeResponse(employee), nil
}

// List lista todos los empleados del dueño. El orden es el que devuelva el store.
func (uc *EmployeeUseCase) List(ownerID string) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return items, nil
}

// Update actualiza parcialmente el empleado (ownerID, empNo): solo los campos
// presentes reemplazan los almacenados. Devuelve (nil, nil) si no existe y
// ErrDuplicate si el nuevo emp_no ya pertenece a otro registro del dueño.
func (uc *EmployeeUseCase) Update(ownerID string, empNo int64, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByOwnerAndEmpNo(ownerID, empNo)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	if in.EmpNo != nil && *in.EmpNo != employee.EmpNo {
		other, _ := uc.repo.GetByOwnerAndEmpNo(ownerID, *in.EmpNo)
		if other != nil {
			return nil, domain.ErrDuplicate
		}
		employee.EmpNo = *in.EmpNo
	}
	if in.EmpName != nil {
		if *in.EmpName == "" {
			return nil, domain.ErrInvalidInput
		}
		employee.EmpName = *in.EmpName
	}
	if in.EmpSal != nil {
		employee.EmpSal = *in.EmpSal
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Delete elimina el empleado (ownerID, empNo). Devuelve ErrNotFound si no existía.
func (uc *EmployeeUseCase) Delete(ownerID string, empNo int64) error {
	return uc.repo.Delete(ownerID, empNo)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:        e.ID,
		OwnerID:   e.OwnerID,
		EmpNo:     e.EmpNo,
		EmpName:   e.EmpName,
		EmpSal:    e.EmpSal,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
