package repository

import "github.com/kj8726/employee-registration/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// Los Find devuelven (nil, nil) cuando no existe registro.
type EmployeeRepository interface {
	// Create valida el esquema del registro, asigna el ID y lo inserta.
	// Una violación de unicidad se reporta como *domain.ConflictError y un
	// esquema inválido como *domain.ValidationError.
	Create(emp *entity.Employee) error
	FindByEmail(email string) (*entity.Employee, error)
	FindByEmployeeID(employeeID string) (*entity.Employee, error)
}
