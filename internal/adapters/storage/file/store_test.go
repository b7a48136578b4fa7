package file

import (
	"context"
	"testing"
	"time"

	"physio-agenda/internal/domain/appointments"
	"physio-agenda/internal/domain/patients"
)

func TestPatientsRepo_SeedsWhenFileAbsent(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	seed := []patients.Patient{
		{ID: "1", Name: "María González", Cedula: "12345678", Status: patients.StatusActive},
	}

	repo, err := NewPatientsRepo(store, seed)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "María González" {
		t.Fatalf("expected seeded patient, got %+v", got)
	}
}

func TestPatientsRepo_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	repo, err := NewPatientsRepo(store, nil)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	p := patients.Patient{
		ID:        "p-1",
		Name:      "Carlos Rodríguez",
		Cedula:    "87654321",
		Status:    patients.StatusFollowUp,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Reabrir el store simula un reinicio del proceso. El seed no pisa
	// datos existentes.
	store2, err := NewStore(dir)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	repo2, err := NewPatientsRepo(store2, []patients.Patient{{ID: "seed", Name: "Seed"}})
	if err != nil {
		t.Fatalf("reopen repo: %v", err)
	}

	got, err := repo2.GetByID(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got.Name != "Carlos Rodríguez" || got.Status != patients.StatusFollowUp {
		t.Fatalf("unexpected patient after reopen: %+v", got)
	}
	if _, err := repo2.GetByID(context.Background(), "seed"); err == nil {
		t.Fatal("seed must not overwrite an existing collection")
	}
}

func TestPatientsRepo_DeleteFiltersCollection(t *testing.T) {
	store, _ := NewStore(t.TempDir())
	repo, err := NewPatientsRepo(store, []patients.Patient{
		{ID: "1", Name: "María"},
		{ID: "2", Name: "Carlos"},
	})
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	if err := repo.Delete(context.Background(), "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, _ := repo.List(context.Background())
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected only patient 2, got %+v", got)
	}

	if err := repo.Delete(context.Background(), "1"); err != patients.ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestAppointmentsRepo_ListByDate(t *testing.T) {
	store, _ := NewStore(t.TempDir())
	repo, err := NewAppointmentsRepo(store, []appointments.Appointment{
		{ID: "a", Date: "2024-01-20", Time: "14:00", Status: appointments.StatusPending},
		{ID: "b", Date: "2024-01-20", Time: "10:00", Status: appointments.StatusConfirmed},
		{ID: "c", Date: "2024-01-21", Time: "09:00", Status: appointments.StatusConfirmed},
	})
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	got, err := repo.ListByDate(context.Background(), "2024-01-20")
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(got))
	}
	// Orden cronológico dentro del día.
	if got[0].Time != "10:00" || got[1].Time != "14:00" {
		t.Fatalf("expected chronological order, got %s then %s", got[0].Time, got[1].Time)
	}
}
