package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kj8726/employee-registration/internal/domain"
	"github.com/kj8726/employee-registration/internal/domain/entity"
	"github.com/kj8726/employee-registration/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

// Create valida el esquema en la frontera del almacén, asigna el ID y
// persiste el registro. Un 23505 del índice único se traduce al mismo
// conflicto que producen los chequeos previos del caso de uso.
func (r *EmployeeRepo) Create(emp *entity.Employee) error {
	if err := domain.ValidateEmployee(emp); err != nil {
		return err
	}
	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}
	query := `
		INSERT INTO employees (id, full_name, email, employee_id, department, position, date_of_joining, registration_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		emp.ID, emp.FullName, emp.Email, emp.EmployeeID, emp.Department, emp.Position,
		emp.DateOfJoining, emp.RegistrationDate,
	)
	if err != nil {
		if conflict := conflictFromErr(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// FindByEmail obtiene un empleado por email normalizado; (nil, nil) si no existe.
func (r *EmployeeRepo) FindByEmail(email string) (*entity.Employee, error) {
	query := `
		SELECT id, full_name, email, employee_id, department, position, date_of_joining, registration_date
		FROM employees WHERE email = $1 LIMIT 1`
	var e entity.Employee
	err := r.pool.QueryRow(context.Background(), query, email).Scan(
		&e.ID, &e.FullName, &e.Email, &e.EmployeeID, &e.Department, &e.Position,
		&e.DateOfJoining, &e.RegistrationDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find employee by email: %w", err)
	}
	return &e, nil
}

// FindByEmployeeID obtiene un empleado por su código interno; (nil, nil) si no existe.
func (r *EmployeeRepo) FindByEmployeeID(employeeID string) (*entity.Employee, error) {
	query := `
		SELECT id, full_name, email, employee_id, department, position, date_of_joining, registration_date
		FROM employees WHERE employee_id = $1 LIMIT 1`
	var e entity.Employee
	err := r.pool.QueryRow(context.Background(), query, employeeID).Scan(
		&e.ID, &e.FullName, &e.Email, &e.EmployeeID, &e.Department, &e.Position,
		&e.DateOfJoining, &e.RegistrationDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find employee by employee_id: %w", err)
	}
	return &e, nil
}
