package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kj8726/employee-registration/internal/domain"
)

// Índices únicos de employees; los nombres los fija la migración.
const (
	constraintEmail      = "employees_email_key"
	constraintEmployeeID = "employees_employee_id_key"
)

// conflictFromErr traduce una violación de índice único (23505) al conflicto
// de dominio del campo correspondiente. Devuelve nil si el error no es una
// violación de unicidad conocida.
func conflictFromErr(err error) *domain.ConflictError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != "23505" { // unique_violation
			return nil
		}
		switch pgErr.ConstraintName {
		case constraintEmail:
			return domain.EmailConflict()
		case constraintEmployeeID:
			return domain.EmployeeIDConflict()
		}
		return nil
	}
	// Algunos proxies devuelven el error aplanado, sin *pgconn.PgError.
	msg := err.Error()
	if !strings.Contains(msg, "23505") {
		return nil
	}
	switch {
	case strings.Contains(msg, constraintEmail):
		return domain.EmailConflict()
	case strings.Contains(msg, constraintEmployeeID):
		return domain.EmployeeIDConflict()
	}
	return nil
}
