package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"physio-agenda/internal/domain/patients"
)

type PatientsRepo struct {
	db *sql.DB
}

func NewPatientsRepo(db *sql.DB) *PatientsRepo {
	return &PatientsRepo{db: db}
}

func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) error {
	history, err := json.Marshal(p.MedicalHistory)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO patients (
			id, name, cedula, phone, email,
			address, birth_date, gender,
			treatments, status, notes, medical_history,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		p.ID,
		p.Name,
		p.Cedula,
		p.Phone,
		p.Email,
		p.Address,
		toNullDate(p.BirthDate),
		string(p.Gender),
		p.Treatments,
		string(p.Status),
		p.Notes,
		history,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PatientsRepo) Update(ctx context.Context, p patients.Patient) error {
	history, err := json.Marshal(p.MedicalHistory)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE patients
		SET
			name = $2,
			cedula = $3,
			phone = $4,
			email = $5,
			address = $6,
			birth_date = $7,
			gender = $8,
			treatments = $9,
			status = $10,
			notes = $11,
			medical_history = $12,
			updated_at = $13
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Cedula,
		p.Phone,
		p.Email,
		p.Address,
		toNullDate(p.BirthDate),
		string(p.Gender),
		p.Treatments,
		string(p.Status),
		p.Notes,
		history,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return patients.ErrNotFound
	}
	return nil
}

func (r *PatientsRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return patients.Patient{}, patients.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, cedula, phone, email,
			address, birth_date, gender,
			treatments, status, notes, medical_history,
			created_at, updated_at
		FROM patients
		WHERE id = $1
	`, id)

	p, err := scanPatient(row)
	if err == sql.ErrNoRows {
		return patients.Patient{}, patients.ErrNotFound
	}
	return p, err
}

func (r *PatientsRepo) List(ctx context.Context) ([]patients.Patient, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, cedula, phone, email,
			address, birth_date, gender,
			treatments, status, notes, medical_history,
			created_at, updated_at
		FROM patients
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PatientsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return patients.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatient(row rowScanner) (patients.Patient, error) {
	var (
		p       patients.Patient
		bd      sql.NullTime
		gender  string
		status  string
		history []byte
	)

	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Cedula,
		&p.Phone,
		&p.Email,
		&p.Address,
		&bd,
		&gender,
		&p.Treatments,
		&status,
		&p.Notes,
		&history,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return patients.Patient{}, err
	}

	if bd.Valid {
		t := bd.Time
		// ojo: birth_date es date, pgx lo puede mapear a time.Time midnight UTC
		p.BirthDate = &t
	}
	p.Gender = patients.Gender(gender)
	p.Status = patients.Status(status)

	// medical_history es jsonb: la historia vive embebida en el paciente,
	// nunca como tabla aparte.
	p.MedicalHistory = []patients.HistoryEntry{}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &p.MedicalHistory); err != nil {
			return patients.Patient{}, err
		}
	}

	return p, nil
}

// birth_date es DATE, lo pasamos como NullTime para simplificar
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
