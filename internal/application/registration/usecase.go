package registration

import (
	"fmt"
	"strings"
	"time"

	"github.com/kj8726/employee-registration/internal/application/dto"
	"github.com/kj8726/employee-registration/internal/domain"
	"github.com/kj8726/employee-registration/internal/domain/entity"
	"github.com/kj8726/employee-registration/internal/domain/repository"
)

// dateLayout formato con el que el cliente envía dateOfJoining.
const dateLayout = "2006-01-02"

// RegistrationUseCase caso de uso de alta de empleados.
type RegistrationUseCase struct {
	employeeRepo repository.EmployeeRepository
}

// NewRegistrationUseCase construye el caso de uso de alta.
func NewRegistrationUseCase(employeeRepo repository.EmployeeRepository) *RegistrationUseCase {
	return &RegistrationUseCase{employeeRepo: employeeRepo}
}

// RegisterEmployee da de alta un empleado: normaliza la entrada, consulta
// email y employeeId duplicados para producir un error amable, construye el
// registro con la fecha de alta del servidor y lo persiste. Los chequeos
// previos y la inserción no van en una transacción: el índice único del
// almacén es la autoridad final y su rechazo llega como el mismo conflicto.
func (uc *RegistrationUseCase) RegisterEmployee(in dto.RegisterEmployeeRequest) (*dto.EmployeeSummary, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	employeeID := strings.TrimSpace(in.EmployeeID)

	existing, err := uc.employeeRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("comprobar email duplicado: %w", err)
	}
	if existing != nil {
		return nil, domain.EmailConflict()
	}

	existing, err = uc.employeeRepo.FindByEmployeeID(employeeID)
	if err != nil {
		return nil, fmt.Errorf("comprobar employeeId duplicado: %w", err)
	}
	if existing != nil {
		return nil, domain.EmployeeIDConflict()
	}

	var dateOfJoining time.Time
	if raw := strings.TrimSpace(in.DateOfJoining); raw != "" {
		dateOfJoining, err = time.Parse(dateLayout, raw)
		if err != nil {
			return nil, &domain.ValidationError{Fields: map[string]string{
				domain.FieldDateOfJoining: "dateOfJoining must be a valid date in YYYY-MM-DD format",
			}}
		}
	}

	emp := &entity.Employee{
		FullName:         strings.TrimSpace(in.FullName),
		Email:            email,
		EmployeeID:       employeeID,
		Department:       strings.TrimSpace(in.Department),
		Position:         strings.TrimSpace(in.Position),
		DateOfJoining:    dateOfJoining,
		RegistrationDate: time.Now().UTC(),
	}
	if err := uc.employeeRepo.Create(emp); err != nil {
		return nil, err
	}
	return toEmployeeSummary(emp), nil
}

func toEmployeeSummary(e *entity.Employee) *dto.EmployeeSummary {
	if e == nil {
		return nil
	}
	return &dto.EmployeeSummary{
		ID:         e.ID,
		FullName:   e.FullName,
		Email:      e.Email,
		EmployeeID: e.EmployeeID,
	}
}
