package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
// Cada consulta incluye owner_id: el scoping por dueño vive en el SQL mismo.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

// Create persiste un nuevo empleado. El constraint UNIQUE(owner_id, emp_no)
// garantiza la unicidad de emp_no por dueño; la violación se traduce a ErrDuplicate.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (id, owner_id, emp_no, emp_name, emp_sal, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		employee.ID, employee.OwnerID, employee.EmpNo, employee.EmpName, employee.EmpSal,
		employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByOwnerAndEmpNo obtiene el empleado (owner_id, emp_no). Devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByOwnerAndEmpNo(ownerID string, empNo int64) (*entity.Employee, error) {
	query := `
		SELECT id, owner_id, emp_no, emp_name, emp_sal, created_at, updated_at
		FROM employees WHERE owner_id = $1 AND emp_no = $2`
	var e entity.Employee
	err := r.pool.QueryRow(context.Background(), query, ownerID, empNo).Scan(
		&e.ID, &e.OwnerID, &e.EmpNo, &e.EmpName, &e.EmpSal, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by emp_no: %w", err)
	}
	return &e, nil
}

// ListByOwner lista los empleados del dueño.
func (r *EmployeeRepo) ListByOwner(ownerID string) ([]*entity.Employee, error) {
	query := `
		SELECT id, owner_id, emp_no, emp_name, emp_sal, created_at, updated_at
		FROM employees WHERE owner_id = $1`
	rows, err := r.pool.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.EmpNo, &e.EmpName, &e.EmpSal, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza un empleado por su ID interno (el dueño no cambia nunca).
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees SET emp_no = $3, emp_name = $4, emp_sal = $5, updated_at = $6
		WHERE id = $1 AND owner_id = $2`
	_, err := r.pool.Exec(context.Background(), query,
		employee.ID, employee.OwnerID, employee.EmpNo, employee.EmpName, employee.EmpSal,
		employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina el empleado (owner_id, emp_no). Devuelve ErrNotFound si no borró filas.
func (r *EmployeeRepo) Delete(ownerID string, empNo int64) error {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM employees WHERE owner_id = $1 AND emp_no = $2`, ownerID, empNo)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
