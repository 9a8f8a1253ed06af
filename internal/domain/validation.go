package domain

import (
	"regexp"

	"github.com/kj8726/employee-registration/internal/domain/entity"
)

// Nombres de campo tal como viajan en el API.
const (
	FieldFullName      = "fullName"
	FieldEmail         = "email"
	FieldEmployeeID    = "employeeId"
	FieldDepartment    = "department"
	FieldPosition      = "position"
	FieldDateOfJoining = "dateOfJoining"
)

// Forma mínima local@dominio.tld; el resto es asunto del servidor de correo.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmployee aplica las reglas de esquema en la frontera de persistencia:
// los seis campos del cliente obligatorios (ya normalizados) y el email con
// forma válida. Devuelve *ValidationError con un mensaje por campo violado,
// o nil si el registro es persistible.
func ValidateEmployee(emp *entity.Employee) error {
	fields := make(map[string]string)
	if emp.FullName == "" {
		fields[FieldFullName] = "fullName is required"
	}
	switch {
	case emp.Email == "":
		fields[FieldEmail] = "email is required"
	case !emailPattern.MatchString(emp.Email):
		fields[FieldEmail] = "email must be a valid email address"
	}
	if emp.EmployeeID == "" {
		fields[FieldEmployeeID] = "employeeId is required"
	}
	if emp.Department == "" {
		fields[FieldDepartment] = "department is required"
	}
	if emp.Position == "" {
		fields[FieldPosition] = "position is required"
	}
	if emp.DateOfJoining.IsZero() {
		fields[FieldDateOfJoining] = "dateOfJoining is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
