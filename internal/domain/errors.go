package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Mensajes de conflicto visibles para el cliente. El chequeo previo y la
// violación del índice único durante la inserción deben producir exactamente
// el mismo mensaje.
const (
	msgEmailInUse      = "Email is already in use"
	msgEmployeeIDInUse = "Employee ID is already in use"
)

// ConflictError señala que un campo único ya pertenece a otro registro.
type ConflictError struct {
	Field   string // nombre del campo tal como viaja en el API
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicto en %s: %s", e.Field, e.Message)
}

// EmailConflict construye el conflicto canónico por email duplicado.
func EmailConflict() *ConflictError {
	return &ConflictError{Field: FieldEmail, Message: msgEmailInUse}
}

// EmployeeIDConflict construye el conflicto canónico por employeeId duplicado.
func EmployeeIDConflict() *ConflictError {
	return &ConflictError{Field: FieldEmployeeID, Message: msgEmployeeIDInUse}
}

// ValidationError agrupa las violaciones de esquema detectadas al persistir,
// un mensaje por campo rechazado.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)
	return "validación de esquema fallida: " + strings.Join(names, ", ")
}
