package patients

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Patient
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Patient{}}
}

func (r *testRepo) Create(ctx context.Context, p Patient) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[p.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Patient) error {
	if _, ok := r.byID[p.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Patient, error) {
	p, ok := r.byID[id]
	if !ok {
		return Patient{}, errRepoNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Patient, error) {
	out := make([]Patient, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

// -------------------------
// Tests
// -------------------------

func newTestService(repo Repository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestCreate_Defaults(t *testing.T) {
	svc := newTestService(newTestRepo())

	p, err := svc.Create(context.Background(), CreateInput{
		Name:   "María González",
		Cedula: "12345678",
		Phone:  "+1234567890",
		Email:  "maria@email.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if p.Status != StatusActive {
		t.Fatalf("expected status Activo, got %s", p.Status)
	}
	if p.Treatments != 0 {
		t.Fatalf("expected 0 treatments, got %d", p.Treatments)
	}
	if len(p.MedicalHistory) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(p.MedicalHistory))
	}
	if p.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestCreate_RequiresNameAndCedula(t *testing.T) {
	svc := newTestService(newTestRepo())

	if _, err := svc.Create(context.Background(), CreateInput{Cedula: "123"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Name: "Ana"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without cedula, got %v", err)
	}
}

func TestCreate_RejectsUnknownGender(t *testing.T) {
	svc := newTestService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		Name:   "Ana",
		Cedula: "11223344",
		Gender: "N/A",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown gender, got %v", err)
	}
}

func TestAddHistory_IncrementsTreatments(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	p, err := svc.Create(context.Background(), CreateInput{Name: "Carlos", Cedula: "87654321"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.AddHistory(context.Background(), p.ID, HistoryInput{
		Date:      "2024-01-15",
		Treatment: "Terapia manual",
		Notes:     "Primera sesión de evaluación",
		Evolution: "Buena respuesta inicial",
	})
	if err != nil {
		t.Fatalf("add history: %v", err)
	}

	if updated.Treatments != 1 {
		t.Fatalf("expected treatments counter 1, got %d", updated.Treatments)
	}
	if len(updated.MedicalHistory) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(updated.MedicalHistory))
	}
	if updated.MedicalHistory[0].Treatment != "Terapia manual" {
		t.Fatalf("unexpected entry: %+v", updated.MedicalHistory[0])
	}

	// Segunda entrada: el contador sigue a la historia.
	updated, err = svc.AddHistory(context.Background(), p.ID, HistoryInput{
		Date:      "2024-01-22",
		Treatment: "Ejercicios",
	})
	if err != nil {
		t.Fatalf("add history: %v", err)
	}
	if updated.Treatments != 2 || len(updated.MedicalHistory) != 2 {
		t.Fatalf("expected counter 2 with 2 entries, got %d/%d", updated.Treatments, len(updated.MedicalHistory))
	}
}

func TestAddHistory_RejectsBadDate(t *testing.T) {
	svc := newTestService(newTestRepo())

	_, err := svc.AddHistory(context.Background(), "whatever", HistoryInput{
		Date:      "15/01/2024",
		Treatment: "Terapia manual",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad date, got %v", err)
	}
}

func TestUpdateProfile_PartialPatch(t *testing.T) {
	svc := newTestService(newTestRepo())

	p, err := svc.Create(context.Background(), CreateInput{
		Name:   "Ana Martínez",
		Cedula: "11223344",
		Phone:  "+1122334455",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := "Alta"
	updated, err := svc.UpdateProfile(context.Background(), p.ID, UpdateInput{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Status != StatusDischarged {
		t.Fatalf("expected status Alta, got %s", updated.Status)
	}
	// Campos no enviados quedan intactos.
	if updated.Name != "Ana Martínez" || updated.Phone != "+1122334455" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateProfile_RejectsUnknownStatus(t *testing.T) {
	svc := newTestService(newTestRepo())

	p, _ := svc.Create(context.Background(), CreateInput{Name: "Ana", Cedula: "1"})

	status := "Archivado"
	if _, err := svc.UpdateProfile(context.Background(), p.ID, UpdateInput{Status: &status}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

func TestList_QueryFilter(t *testing.T) {
	svc := newTestService(newTestRepo())

	_, _ = svc.Create(context.Background(), CreateInput{Name: "María González", Cedula: "12345678", Email: "maria@email.com"})
	_, _ = svc.Create(context.Background(), CreateInput{Name: "Carlos Rodríguez", Cedula: "87654321", Email: "carlos@email.com"})

	got, err := svc.List(context.Background(), "carlos")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Carlos Rodríguez" {
		t.Fatalf("expected only Carlos, got %+v", got)
	}

	// Por cédula también matchea.
	got, err = svc.List(context.Background(), "8765")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Cedula != "87654321" {
		t.Fatalf("expected match by cedula substring, got %+v", got)
	}

	// Por email matchean los dos.
	got, err = svc.List(context.Background(), "@email.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both patients by email substring, got %d", len(got))
	}
}
