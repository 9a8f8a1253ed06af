package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kj8726/employee-registration/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests conflictFromErr
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: violación del índice de email → conflicto de email.
func TestConflictFromErr_IndiceEmail(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: constraintEmail}

	conflict := conflictFromErr(err)
	require.NotNil(t, conflict)
	assert.Equal(t, domain.FieldEmail, conflict.Field)
	assert.Equal(t, "Email is already in use", conflict.Message)
}

// Caso 2: violación del índice de employeeId → conflicto de employeeId.
func TestConflictFromErr_IndiceEmployeeID(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: constraintEmployeeID}

	conflict := conflictFromErr(err)
	require.NotNil(t, conflict)
	assert.Equal(t, domain.FieldEmployeeID, conflict.Field)
}

// Caso 3: el PgError puede venir envuelto por capas intermedias.
func TestConflictFromErr_ErrorEnvuelto(t *testing.T) {
	base := &pgconn.PgError{Code: "23505", ConstraintName: constraintEmail}
	err := fmt.Errorf("insert employee: %w", base)

	conflict := conflictFromErr(err)
	require.NotNil(t, conflict)
	assert.Equal(t, domain.FieldEmail, conflict.Field)
}

// Caso 4: códigos que no son 23505 no se traducen.
func TestConflictFromErr_OtroCodigo(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", ConstraintName: constraintEmail}
	assert.Nil(t, conflictFromErr(err))
}

// Caso 5: un 23505 de un índice desconocido tampoco; mejor un 500 visible que
// culpar al campo equivocado.
func TestConflictFromErr_IndiceDesconocido(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "employees_pkey"}
	assert.Nil(t, conflictFromErr(err))
}

// Caso 6: error aplanado a texto por un proxy, sin *pgconn.PgError en la
// cadena.
func TestConflictFromErr_TextoAplanado(t *testing.T) {
	err := errors.New(`ERROR: duplicate key value violates unique constraint "employees_email_key" (SQLSTATE 23505)`)

	conflict := conflictFromErr(err)
	require.NotNil(t, conflict)
	assert.Equal(t, domain.FieldEmail, conflict.Field)
}

// Caso 7: texto sin el código de unicidad → nil.
func TestConflictFromErr_TextoSinCodigo(t *testing.T) {
	assert.Nil(t, conflictFromErr(errors.New("connection reset by peer")))
}
