package postgres

import (
	"context"
	"database/sql"
	"strings"

	"physio-agenda/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

// date y time se guardan como TEXT (YYYY-MM-DD / HH:MM): el modelo de
// agenda compara strings exactos, no instantes.
func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (
			id, patient_id, patient_name,
			date, time, duration,
			type, status, notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		a.ID,
		a.PatientID,
		a.PatientName,
		a.Date,
		a.Time,
		a.Duration,
		a.Type,
		string(a.Status),
		a.Notes,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET
			patient_id = $2,
			patient_name = $3,
			date = $4,
			time = $5,
			duration = $6,
			type = $7,
			status = $8,
			notes = $9,
			updated_at = $10
		WHERE id = $1
	`,
		a.ID,
		a.PatientID,
		a.PatientName,
		a.Date,
		a.Time,
		a.Duration,
		a.Type,
		string(a.Status),
		a.Notes,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return appointments.Appointment{}, appointments.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, patient_id, patient_name,
			date, time, duration,
			type, status, notes,
			created_at, updated_at
		FROM appointments
		WHERE id = $1
	`, id)

	a, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, err
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	return r.list(ctx, `
		SELECT
			id, patient_id, patient_name,
			date, time, duration,
			type, status, notes,
			created_at, updated_at
		FROM appointments
		ORDER BY date ASC, time ASC
	`)
}

func (r *AppointmentsRepo) ListByDate(ctx context.Context, date string) ([]appointments.Appointment, error) {
	return r.list(ctx, `
		SELECT
			id, patient_id, patient_name,
			date, time, duration,
			type, status, notes,
			created_at, updated_at
		FROM appointments
		WHERE date = $1
		ORDER BY time ASC
	`, date)
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) list(ctx context.Context, query string, args ...any) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func scanAppointment(row rowScanner) (appointments.Appointment, error) {
	var (
		a      appointments.Appointment
		status string
	)

	if err := row.Scan(
		&a.ID,
		&a.PatientID,
		&a.PatientName,
		&a.Date,
		&a.Time,
		&a.Duration,
		&a.Type,
		&status,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return appointments.Appointment{}, err
	}

	a.Status = appointments.Status(status)
	return a, nil
}
