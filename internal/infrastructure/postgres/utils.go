package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// folioConstraint nombre de la restricción UNIQUE de solicitudes.folio.
const folioConstraint = "solicitudes_folio_key"

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isUniqueViolationOn como isUniqueViolation pero sólo para la restricción indicada.
func isUniqueViolationOn(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}
