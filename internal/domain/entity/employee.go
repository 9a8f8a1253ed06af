package entity

import "time"

// Employee representa un registro de empleado dado de alta vía el formulario.
type Employee struct {
	ID               string
	FullName         string
	Email            string // normalizado: trim + minúsculas
	EmployeeID       string // código interno de empleado, único
	Department       string
	Position         string
	DateOfJoining    time.Time
	RegistrationDate time.Time // asignada por el servidor al crear, nunca por el cliente
}
