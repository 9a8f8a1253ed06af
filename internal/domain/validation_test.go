package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kj8726/employee-registration/internal/domain"
	"github.com/kj8726/employee-registration/internal/domain/entity"
)

func validEmployee() *entity.Employee {
	return &entity.Employee{
		FullName:         "Jane Doe",
		Email:            "jane@x.com",
		EmployeeID:       "E1",
		Department:       "Eng",
		Position:         "Dev",
		DateOfJoining:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		RegistrationDate: time.Now().UTC(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ValidateEmployee
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: un registro completo y bien formado pasa sin error.
func TestValidateEmployee_RegistroValido(t *testing.T) {
	assert.NoError(t, domain.ValidateEmployee(validEmployee()))
}

// Caso 2: un registro vacío viola los seis campos del cliente a la vez.
func TestValidateEmployee_RegistroVacio(t *testing.T) {
	err := domain.ValidateEmployee(&entity.Employee{})

	var invalid *domain.ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Len(t, invalid.Fields, 6)
	assert.Equal(t, "fullName is required", invalid.Fields[domain.FieldFullName])
	assert.Equal(t, "email is required", invalid.Fields[domain.FieldEmail])
	assert.Equal(t, "employeeId is required", invalid.Fields[domain.FieldEmployeeID])
	assert.Equal(t, "department is required", invalid.Fields[domain.FieldDepartment])
	assert.Equal(t, "position is required", invalid.Fields[domain.FieldPosition])
	assert.Equal(t, "dateOfJoining is required", invalid.Fields[domain.FieldDateOfJoining])
}

// Caso 3: forma del email. La regla pide local@dominio.tld sin espacios.
func TestValidateEmployee_FormaDelEmail(t *testing.T) {
	cases := []struct {
		nombre string
		email  string
		valido bool
	}{
		{"simple", "a@b.co", true},
		{"con subdominio", "user@mail.example.org", true},
		{"con etiqueta", "user+tag@example.com", true},
		{"sin arroba", "not-an-email", false},
		{"sin punto en el dominio", "a@b", false},
		{"con espacio", "a b@x.com", false},
		{"arroba doble", "a@@x.com", false},
		{"termina en punto", "a@x.", false},
	}

	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			emp := validEmployee()
			emp.Email = tc.email
			err := domain.ValidateEmployee(emp)

			if tc.valido {
				assert.NoError(t, err)
				return
			}
			var invalid *domain.ValidationError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "email must be a valid email address", invalid.Fields[domain.FieldEmail])
		})
	}
}

// Caso 4: cada violación aporta su propio mensaje, no se pisan entre sí.
func TestValidateEmployee_AcumulaViolaciones(t *testing.T) {
	emp := validEmployee()
	emp.Email = "not-an-email"
	emp.Position = ""
	emp.DateOfJoining = time.Time{}

	err := domain.ValidateEmployee(emp)

	var invalid *domain.ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Len(t, invalid.Fields, 3)
	assert.Contains(t, invalid.Fields, domain.FieldEmail)
	assert.Contains(t, invalid.Fields, domain.FieldPosition)
	assert.Contains(t, invalid.Fields, domain.FieldDateOfJoining)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de los errores del dominio
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: los constructores de conflicto fijan el campo y el mensaje canónicos.
func TestConflictError_Constructores(t *testing.T) {
	email := domain.EmailConflict()
	assert.Equal(t, domain.FieldEmail, email.Field)
	assert.Equal(t, "Email is already in use", email.Message)

	code := domain.EmployeeIDConflict()
	assert.Equal(t, domain.FieldEmployeeID, code.Field)
	assert.Equal(t, "Employee ID is already in use", code.Message)

	assert.Contains(t, email.Error(), "email")
}

// Caso 6: Error() lista los campos violados en orden estable.
func TestValidationError_CamposOrdenados(t *testing.T) {
	err := &domain.ValidationError{Fields: map[string]string{
		domain.FieldPosition: "position is required",
		domain.FieldEmail:    "email is required",
	}}
	assert.Equal(t, "validación de esquema fallida: email, position", err.Error())
}
