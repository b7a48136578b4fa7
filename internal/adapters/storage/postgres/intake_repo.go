package postgres

import (
	"context"
	"database/sql"

	"physio-agenda/internal/domain/intake"
)

// IntakeRepo escribe las altas del formulario público en la tabla
// pacientes. Una fila por envío; la unicidad (si se quiere) la pone la
// base, no este código.
type IntakeRepo struct {
	db *sql.DB
}

func NewIntakeRepo(db *sql.DB) *IntakeRepo {
	return &IntakeRepo{db: db}
}

func (r *IntakeRepo) Insert(ctx context.Context, reg intake.Registration) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pacientes (nombre, cedula, telefono, correo)
		VALUES ($1, $2, $3, $4)
	`,
		reg.Nombre,
		reg.Cedula,
		reg.Telefono,
		reg.Correo,
	)
	return err
}
