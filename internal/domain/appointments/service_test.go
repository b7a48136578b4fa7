package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Appointment
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Appointment{}}
}

func (r *testRepo) Create(ctx context.Context, a Appointment) error {
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Update(ctx context.Context, a Appointment) error {
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context) ([]Appointment, error) {
	out := make([]Appointment, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) ListByDate(ctx context.Context, date string) ([]Appointment, error) {
	out := make([]Appointment, 0)
	for _, a := range r.byID {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// -------------------------
// Tests
// -------------------------

func newTestService() *Service {
	svc := NewService(newTestRepo())
	svc.now = func() time.Time {
		return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestCreate_Defaults(t *testing.T) {
	svc := newTestService()

	a, err := svc.Create(context.Background(), CreateInput{
		PatientID:   "p-1",
		PatientName: "María González",
		Date:        "2024-01-20",
		Time:        "10:00",
		Type:        TypeManualTherapy,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, a.Status, "status defaults to confirmada")
	assert.Equal(t, 60, a.Duration, "duration defaults to 60 minutes")
	assert.Equal(t, "María González", a.PatientName)
	assert.NotEmpty(t, a.ID)
}

func TestCreate_RejectsNonCanonicalSlot(t *testing.T) {
	svc := newTestService()

	cases := []string{"07:30", "19:00", "09:15", "9:00", ""}
	for _, slot := range cases {
		_, err := svc.Create(context.Background(), CreateInput{
			PatientID:   "p-1",
			PatientName: "María",
			Date:        "2024-01-20",
			Time:        slot,
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "slot %q", slot)
	}
}

func TestCreate_SlotConflict(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{
		PatientID:   "p-1",
		PatientName: "María",
		Date:        "2024-01-20",
		Time:        "10:00",
	})
	require.NoError(t, err)

	// Mismo (fecha, horario): conflicto en el write boundary.
	_, err = svc.Create(context.Background(), CreateInput{
		PatientID:   "p-2",
		PatientName: "Carlos",
		Date:        "2024-01-20",
		Time:        "10:00",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Mismo horario en otra fecha: sin conflicto.
	_, err = svc.Create(context.Background(), CreateInput{
		PatientID:   "p-2",
		PatientName: "Carlos",
		Date:        "2024-01-21",
		Time:        "10:00",
	})
	assert.NoError(t, err)
}

func TestCreate_CancelledStillBlocksSlot(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{
		PatientID:   "p-1",
		PatientName: "María",
		Date:        "2024-01-20",
		Time:        "10:00",
		Status:      "cancelada",
	})
	require.NoError(t, err)

	// Política vigente: la cancelada sigue bloqueando el turno.
	_, err = svc.Create(context.Background(), CreateInput{
		PatientID:   "p-2",
		PatientName: "Carlos",
		Date:        "2024-01-20",
		Time:        "10:00",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUpdate_RescheduleConflict(t *testing.T) {
	svc := newTestService()

	a1, err := svc.Create(context.Background(), CreateInput{
		PatientID:   "p-1",
		PatientName: "María",
		Date:        "2024-01-20",
		Time:        "10:00",
	})
	require.NoError(t, err)

	a2, err := svc.Create(context.Background(), CreateInput{
		PatientID:   "p-2",
		PatientName: "Carlos",
		Date:        "2024-01-20",
		Time:        "14:00",
	})
	require.NoError(t, err)

	// Mover a2 al turno de a1: conflicto.
	taken := "10:00"
	_, err = svc.Update(context.Background(), a2.ID, UpdateInput{Time: &taken})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Cambiar solo el status no re-chequea el turno propio.
	cancelled := "cancelada"
	updated, err := svc.Update(context.Background(), a1.ID, UpdateInput{Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, updated.Status)

	// Mover a2 a un turno libre sí funciona.
	free := "14:30"
	updated, err = svc.Update(context.Background(), a2.ID, UpdateInput{Time: &free})
	require.NoError(t, err)
	assert.Equal(t, "14:30", updated.Time)
}

func TestUpdate_RejectsUnknownStatus(t *testing.T) {
	svc := newTestService()

	a, err := svc.Create(context.Background(), CreateInput{
		PatientID:   "p-1",
		PatientName: "María",
		Date:        "2024-01-20",
		Time:        "10:00",
	})
	require.NoError(t, err)

	bogus := "reprogramada"
	_, err = svc.Update(context.Background(), a.ID, UpdateInput{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBookings_ProjectsWholeAgenda(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{
		PatientID:   "p-1",
		PatientName: "María",
		Date:        "2024-01-20",
		Time:        "10:00",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateInput{
		PatientID:   "p-2",
		PatientName: "Carlos",
		Date:        "2024-01-21",
		Time:        "14:00",
		Status:      "pendiente",
	})
	require.NoError(t, err)

	bookings, err := svc.Bookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	for _, b := range bookings {
		assert.NotEmpty(t, b.Date)
		assert.NotEmpty(t, b.Time)
		assert.NotEmpty(t, b.Status)
	}
}
