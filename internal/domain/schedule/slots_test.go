package schedule

import (
	"reflect"
	"testing"
)

func TestTimeSlots_CanonicalSet(t *testing.T) {
	slots := TimeSlots()

	if len(slots) != 22 {
		t.Fatalf("expected 22 canonical slots, got %d", len(slots))
	}
	if slots[0] != "08:00" {
		t.Fatalf("expected first slot 08:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "18:30" {
		t.Fatalf("expected last slot 18:30, got %s", slots[len(slots)-1])
	}

	for i := 1; i < len(slots); i++ {
		if slots[i] <= slots[i-1] {
			t.Fatalf("slots not ascending: %s then %s", slots[i-1], slots[i])
		}
	}
}

func TestAvailableSlots_NoDateReturnsFullSet(t *testing.T) {
	booked := []Booking{
		{Date: "2024-01-20", Time: "10:00", Status: "confirmada"},
	}

	got := AvailableSlots("", booked)
	if !reflect.DeepEqual(got, TimeSlots()) {
		t.Fatalf("expected full canonical set without date, got %v", got)
	}
}

func TestAvailableSlots_ExcludesTakenTimes(t *testing.T) {
	booked := []Booking{
		{Date: "2024-01-20", Time: "10:00", Status: "confirmada"},
		{Date: "2024-01-20", Time: "14:00", Status: "pendiente"},
		// Otra fecha: no debe afectar.
		{Date: "2024-01-21", Time: "09:00", Status: "confirmada"},
	}

	got := AvailableSlots("2024-01-20", booked)

	if len(got) != 20 {
		t.Fatalf("expected 20 slots, got %d: %v", len(got), got)
	}
	for _, s := range got {
		if s == "10:00" || s == "14:00" {
			t.Fatalf("taken slot %s still available", s)
		}
	}
	if !contains(got, "09:00") {
		t.Fatalf("slot 09:00 should stay available (booking is on another date)")
	}
}

func TestAvailableSlots_CancelledStillBlocks(t *testing.T) {
	// Política vigente: una cita cancelada sigue bloqueando su turno.
	booked := []Booking{
		{Date: "2024-01-20", Time: "10:00", Status: "cancelada"},
	}

	got := AvailableSlots("2024-01-20", booked)
	if contains(got, "10:00") {
		t.Fatalf("cancelled booking should still block its slot")
	}
	if len(got) != 21 {
		t.Fatalf("expected 21 slots, got %d", len(got))
	}
}

func TestAvailableSlots_DurationDoesNotBlockNeighbours(t *testing.T) {
	// El modelo es por coincidencia exacta de turno, no por solapamiento
	// de intervalos: una cita de 90' a las 09:00 no bloquea las 09:30.
	booked := []Booking{
		{Date: "2024-01-20", Time: "09:00", Status: "confirmada"},
	}

	got := AvailableSlots("2024-01-20", booked)
	if !contains(got, "09:30") {
		t.Fatalf("expected 09:30 to remain available")
	}
	if !contains(got, "10:00") {
		t.Fatalf("expected 10:00 to remain available")
	}
}

func TestAvailableSlots_FullyBookedDay(t *testing.T) {
	booked := make([]Booking, 0, 22)
	for _, s := range TimeSlots() {
		booked = append(booked, Booking{Date: "2024-01-20", Time: s, Status: "confirmada"})
	}

	got := AvailableSlots("2024-01-20", booked)
	if len(got) != 0 {
		t.Fatalf("expected empty result for fully booked day, got %v", got)
	}
}

func TestAvailableSlots_Idempotent(t *testing.T) {
	booked := []Booking{
		{Date: "2024-01-20", Time: "10:00", Status: "confirmada"},
		{Date: "2024-01-20", Time: "14:00", Status: "pendiente"},
	}

	first := AvailableSlots("2024-01-20", booked)
	second := AvailableSlots("2024-01-20", booked)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same input produced different output:\n%v\n%v", first, second)
	}
}

func contains(slots []string, want string) bool {
	for _, s := range slots {
		if s == want {
			return true
		}
	}
	return false
}
