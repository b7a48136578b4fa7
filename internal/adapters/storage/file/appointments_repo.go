package file

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"physio-agenda/internal/domain/appointments"
)

const appointmentsKey = "appointments"

type appointmentsRepo struct {
	mu    sync.Mutex
	store *Store
}

// NewAppointmentsRepo persiste la agenda en <dir>/appointments.json, con
// la misma semántica de colección completa que el repo de pacientes.
func NewAppointmentsRepo(store *Store, seed []appointments.Appointment) (appointments.Repository, error) {
	r := &appointmentsRepo{store: store}

	var existing []appointments.Appointment
	ok, err := store.load(appointmentsKey, &existing)
	if err != nil {
		return nil, err
	}
	if !ok {
		if seed == nil {
			seed = []appointments.Appointment{}
		}
		if err := store.save(appointmentsKey, seed); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *appointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("appointment id required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.loadAll()
	if err != nil {
		return err
	}
	for _, existing := range all {
		if existing.ID == a.ID {
			return errors.New("appointment already exists")
		}
	}

	return r.store.save(appointmentsKey, append(all, a))
}

func (r *appointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.loadAll()
	if err != nil {
		return err
	}

	for i := range all {
		if all[i].ID == a.ID {
			all[i] = a
			return r.store.save(appointmentsKey, all)
		}
	}
	return appointments.ErrNotFound
}

func (r *appointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.loadAll()
	if err != nil {
		return appointments.Appointment{}, err
	}

	for _, a := range all {
		if a.ID == id {
			return a, nil
		}
	}
	return appointments.Appointment{}, appointments.ErrNotFound
}

func (r *appointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	sortByDateTime(all)
	return all, nil
}

func (r *appointmentsRepo) ListByDate(ctx context.Context, date string) ([]appointments.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.loadAll()
	if err != nil {
		return nil, err
	}

	out := make([]appointments.Appointment, 0)
	for _, a := range all {
		if a.Date == date {
			out = append(out, a)
		}
	}
	sortByDateTime(out)
	return out, nil
}

func (r *appointmentsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.loadAll()
	if err != nil {
		return err
	}

	kept := make([]appointments.Appointment, 0, len(all))
	for _, a := range all {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(all) {
		return appointments.ErrNotFound
	}

	return r.store.save(appointmentsKey, kept)
}

func (r *appointmentsRepo) loadAll() ([]appointments.Appointment, error) {
	out := []appointments.Appointment{}
	if _, err := r.store.load(appointmentsKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func sortByDateTime(list []appointments.Appointment) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		return list[i].Time < list[j].Time
	})
}
