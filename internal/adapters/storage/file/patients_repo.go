package file

import (
	"context"
	"errors"
	"strings"
	"sync"

	"physio-agenda/internal/domain/patients"
)

const patientsKey = "patients"

type patientsRepo struct {
	mu    sync.Mutex
	store *Store
}

// NewPatientsRepo persiste la colección de pacientes en <dir>/patients.json.
// Si el archivo todavía no existe, lo inicializa con seed (análogo al
// fallback a los datos mock cuando el localStorage está vacío).
func NewPatientsRepo(store *Store, seed []patients.Patient) (patients.Repository, error) {
	r := &patientsRepo{store: store}

	var existing []patients.Patient
	ok, err := store.load(patientsKey, &existing)
	if err != nil {
		return nil, err
	}
	if !ok {
		if seed == nil {
			seed = []patients.Patient{}
		}
		if err := store.save(patientsKey, seed); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *patientsRepo) Create(ctx context.Context, p patients.Patient) error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("patient id required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.loadAll()
	if err != nil {
		return err
	}
	for _, existing := range all {
		if existing.ID == p.ID {
			return errors.New("patient already exists")
		}
	}

	return r.store.save(patientsKey, append(all, p))
}

func (r *patientsRepo) Update(ctx context.Context, p patients.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.loadAll()
	if err != nil {
		return err
	}

	for i := range all {
		if all[i].ID == p.ID {
			all[i] = p
			return r.store.save(patientsKey, all)
		}
	}
	return patients.ErrNotFound
}

func (r *patientsRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.loadAll()
	if err != nil {
		return patients.Patient{}, err
	}

	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return patients.Patient{}, patients.ErrNotFound
}

func (r *patientsRepo) List(ctx context.Context) ([]patients.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loadAll()
}

// Delete filtra la colección y la persiste entera, como hacía el front.
func (r *patientsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.loadAll()
	if err != nil {
		return err
	}

	kept := make([]patients.Patient, 0, len(all))
	for _, p := range all {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(all) {
		return patients.ErrNotFound
	}

	return r.store.save(patientsKey, kept)
}

func (r *patientsRepo) loadAll() ([]patients.Patient, error) {
	out := []patients.Patient{}
	if _, err := r.store.load(patientsKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}
