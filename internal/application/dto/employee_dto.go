package dto

// RegisterEmployeeRequest entrada del alta de empleado (los seis campos del
// cliente). Fiber la rellena desde JSON o desde un formulario url-encoded
// según el Content-Type; registrationDate no existe aquí a propósito.
type RegisterEmployeeRequest struct {
	FullName      string `json:"fullName" form:"fullName" validate:"required"`
	Email         string `json:"email" form:"email" validate:"required"`
	EmployeeID    string `json:"employeeId" form:"employeeId" validate:"required"`
	Department    string `json:"department" form:"department" validate:"required"`
	Position      string `json:"position" form:"position" validate:"required"`
	DateOfJoining string `json:"dateOfJoining" form:"dateOfJoining" validate:"required"`
}

// EmployeeSummary proyección mínima del registro creado. Nunca incluye
// department, position ni fechas.
type EmployeeSummary struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	EmployeeID string `json:"employeeId"`
}

// RegisterEmployeeResponse cuerpo de éxito del alta (201).
type RegisterEmployeeResponse struct {
	Message  string          `json:"message"`
	Employee EmployeeSummary `json:"employee"`
}
