package patients

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// ParseStatus valida el status contra la enumeración cerrada; el string
// libre del formulario no se confía.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.TrimSpace(s)) {
	case StatusActive:
		return StatusActive, nil
	case StatusFollowUp:
		return StatusFollowUp, nil
	case StatusDischarged:
		return StatusDischarged, nil
	default:
		return "", ErrInvalidInput
	}
}

func parseGender(s string) (Gender, error) {
	switch Gender(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	case GenderOther:
		return GenderOther, nil
	default:
		return "", ErrInvalidInput
	}
}

type CreateInput struct {
	Name      string
	Cedula    string
	Phone     string
	Email     string
	Address   string
	BirthDate *time.Time
	Gender    string
	Notes     string
}

// Create registra un paciente nuevo. Arranca Activo, con el contador de
// tratamientos en cero y la historia clínica vacía.
func (s *Service) Create(ctx context.Context, in CreateInput) (Patient, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Patient{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Cedula) == "" {
		return Patient{}, ErrInvalidInput
	}

	gender, err := parseGender(in.Gender)
	if err != nil {
		return Patient{}, err
	}

	now := s.now()
	p := Patient{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(in.Name),
		Cedula:         strings.TrimSpace(in.Cedula),
		Phone:          strings.TrimSpace(in.Phone),
		Email:          strings.TrimSpace(in.Email),
		Address:        strings.TrimSpace(in.Address),
		BirthDate:      in.BirthDate,
		Gender:         gender,
		Treatments:     0,
		Status:         StatusActive,
		Notes:          strings.TrimSpace(in.Notes),
		MedicalHistory: []HistoryEntry{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Patient{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Patient{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// List devuelve los pacientes, opcionalmente filtrados por query libre
// sobre nombre, cédula o email (case-insensitive, substring).
func (s *Service) List(ctx context.Context, query string) ([]Patient, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all, nil
	}

	out := make([]Patient, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Cedula), query) ||
			strings.Contains(strings.ToLower(p.Email), query) {
			out = append(out, p)
		}
	}
	return out, nil
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name      *string
	Cedula    *string
	Phone     *string
	Email     *string
	Address   *string
	BirthDate *string // YYYY-MM-DD; string vacío limpia el campo
	Gender    *string
	Status    *string
	Notes     *string
}

// UpdateProfile aplica un PATCH parcial sobre la ficha.
//
// Ojo: renombrar un paciente NO reescribe el patientName cacheado en sus
// citas; esa copia es deliberadamente point-in-time (ver appointments).
func (s *Service) UpdateProfile(ctx context.Context, id string, in UpdateInput) (Patient, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Patient{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Patient{}, ErrInvalidInput
		}
		p.Name = name
	}
	if in.Cedula != nil {
		ced := strings.TrimSpace(*in.Cedula)
		if ced == "" {
			return Patient{}, ErrInvalidInput
		}
		p.Cedula = ced
	}
	if in.Phone != nil {
		p.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		p.Email = strings.TrimSpace(*in.Email)
	}
	if in.Address != nil {
		p.Address = strings.TrimSpace(*in.Address)
	}
	if in.BirthDate != nil {
		bd := strings.TrimSpace(*in.BirthDate)
		if bd == "" {
			p.BirthDate = nil
		} else {
			t, err := time.Parse("2006-01-02", bd)
			if err != nil {
				return Patient{}, ErrInvalidInput
			}
			p.BirthDate = &t
		}
	}
	if in.Gender != nil {
		g, err := parseGender(*in.Gender)
		if err != nil {
			return Patient{}, err
		}
		p.Gender = g
	}
	if in.Status != nil {
		st, err := ParseStatus(*in.Status)
		if err != nil {
			return Patient{}, err
		}
		p.Status = st
	}
	if in.Notes != nil {
		p.Notes = strings.TrimSpace(*in.Notes)
	}

	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Patient{}, err
	}
	return p, nil
}

type HistoryInput struct {
	Date      string // YYYY-MM-DD
	Treatment string
	Notes     string
	Evolution string
}

// AddHistory agrega una entrada a la historia clínica e incrementa el
// contador desnormalizado de tratamientos en la misma escritura.
func (s *Service) AddHistory(ctx context.Context, patientID string, in HistoryInput) (Patient, error) {
	if strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Treatment) == "" {
		return Patient{}, ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(in.Date)); err != nil {
		return Patient{}, ErrInvalidInput
	}

	p, err := s.repo.GetByID(ctx, patientID)
	if err != nil {
		return Patient{}, err
	}

	entry := HistoryEntry{
		ID:        uuid.NewString(),
		Date:      strings.TrimSpace(in.Date),
		Treatment: strings.TrimSpace(in.Treatment),
		Notes:     strings.TrimSpace(in.Notes),
		Evolution: strings.TrimSpace(in.Evolution),
	}

	p.MedicalHistory = append(p.MedicalHistory, entry)
	p.Treatments++
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Patient{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
