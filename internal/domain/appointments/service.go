package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"physio-agenda/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	// ErrSlotTaken: ya existe una cita en ese (fecha, horario). La unicidad
	// se exige acá, en el write boundary, no como chequeo consultivo de UI.
	// Una cita cancelada también cuenta como ocupada (política vigente).
	ErrSlotTaken = errors.New("slot already taken")
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

func ParseStatus(s string) (Status, error) {
	switch Status(strings.TrimSpace(s)) {
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusPending:
		return StatusPending, nil
	case StatusCancelled:
		return StatusCancelled, nil
	default:
		return "", ErrInvalidInput
	}
}

type CreateInput struct {
	PatientID   string
	PatientName string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	Duration    int    // minutos; default 60
	Type        string
	Status      string // default confirmada
	Notes       string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	if strings.TrimSpace(in.PatientID) == "" || strings.TrimSpace(in.PatientName) == "" {
		return Appointment{}, ErrInvalidInput
	}

	date := strings.TrimSpace(in.Date)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return Appointment{}, ErrInvalidInput
	}

	slot := strings.TrimSpace(in.Time)
	if !isCanonicalSlot(slot) {
		return Appointment{}, ErrInvalidInput
	}

	duration := in.Duration
	if duration == 0 {
		duration = 60
	}
	if duration < 0 {
		return Appointment{}, ErrInvalidInput
	}

	status := StatusConfirmed
	if strings.TrimSpace(in.Status) != "" {
		var err error
		status, err = ParseStatus(in.Status)
		if err != nil {
			return Appointment{}, err
		}
	}

	free, err := s.freeSlots(ctx, date, "")
	if err != nil {
		return Appointment{}, err
	}
	if !containsSlot(free, slot) {
		return Appointment{}, ErrSlotTaken
	}

	now := s.now()
	a := Appointment{
		ID:          uuid.NewString(),
		PatientID:   strings.TrimSpace(in.PatientID),
		PatientName: strings.TrimSpace(in.PatientName),
		Date:        date,
		Time:        slot,
		Duration:    duration,
		Type:        strings.TrimSpace(in.Type),
		Status:      status,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Appointment{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// List devuelve la agenda completa, o solo las citas de una fecha si date
// no viene vacío.
func (s *Service) List(ctx context.Context, date string) ([]Appointment, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return s.repo.List(ctx)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByDate(ctx, date)
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Date     *string
	Time     *string
	Duration *int
	Type     *string
	Status   *string
	Notes    *string
}

// Update aplica un PATCH parcial. Si cambia la fecha o el horario, vuelve
// a validar disponibilidad excluyendo a la propia cita.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	newDate, newSlot := a.Date, a.Time

	if in.Date != nil {
		d := strings.TrimSpace(*in.Date)
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return Appointment{}, ErrInvalidInput
		}
		newDate = d
	}
	if in.Time != nil {
		t := strings.TrimSpace(*in.Time)
		if !isCanonicalSlot(t) {
			return Appointment{}, ErrInvalidInput
		}
		newSlot = t
	}

	if newDate != a.Date || newSlot != a.Time {
		free, err := s.freeSlots(ctx, newDate, a.ID)
		if err != nil {
			return Appointment{}, err
		}
		if !containsSlot(free, newSlot) {
			return Appointment{}, ErrSlotTaken
		}
	}

	a.Date = newDate
	a.Time = newSlot

	if in.Duration != nil {
		if *in.Duration <= 0 {
			return Appointment{}, ErrInvalidInput
		}
		a.Duration = *in.Duration
	}
	if in.Type != nil {
		a.Type = strings.TrimSpace(*in.Type)
	}
	if in.Status != nil {
		st, err := ParseStatus(*in.Status)
		if err != nil {
			return Appointment{}, err
		}
		a.Status = st
	}
	if in.Notes != nil {
		a.Notes = strings.TrimSpace(*in.Notes)
	}

	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// Bookings implementa schedule.BookingSource: proyecta la agenda completa
// al tipo mínimo que consume el cálculo de disponibilidad.
func (s *Service) Bookings(ctx context.Context) ([]schedule.Booking, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]schedule.Booking, 0, len(all))
	for _, a := range all {
		out = append(out, schedule.Booking{
			Date:   a.Date,
			Time:   a.Time,
			Status: string(a.Status),
		})
	}
	return out, nil
}

// freeSlots calcula los turnos libres de una fecha. excludeID permite
// ignorar una cita (la que se está reprogramando).
func (s *Service) freeSlots(ctx context.Context, date, excludeID string) ([]string, error) {
	sameDay, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	booked := make([]schedule.Booking, 0, len(sameDay))
	for _, a := range sameDay {
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		booked = append(booked, schedule.Booking{
			Date:   a.Date,
			Time:   a.Time,
			Status: string(a.Status),
		})
	}

	return schedule.AvailableSlots(date, booked), nil
}

func isCanonicalSlot(slot string) bool {
	return containsSlot(schedule.TimeSlots(), slot)
}

func containsSlot(slots []string, want string) bool {
	for _, s := range slots {
		if s == want {
			return true
		}
	}
	return false
}
