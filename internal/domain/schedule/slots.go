package schedule

import "fmt"

const (
	// Horario de atención: el primer turno arranca a las 08:00 y el
	// último a las 18:30 (la hora 19 queda excluida).
	openHour  = 8
	closeHour = 19
)

// Booking es la proyección mínima de una cita que necesita el cálculo de
// disponibilidad. El paquete appointments mapea sus citas a este tipo para
// no acoplar la agenda al modelo completo.
type Booking struct {
	Date   string // YYYY-MM-DD
	Time   string // HH:MM
	Status string // confirmada | pendiente | cancelada
}

// TimeSlots genera el set canónico de turnos de media hora: 08:00, 08:30,
// ..., 18:30 (22 en total), en orden ascendente. Es fijo e independiente
// de la fecha: no varía por día de semana ni feriados.
func TimeSlots() []string {
	slots := make([]string, 0, (closeHour-openHour)*2)
	for hour := openHour; hour < closeHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
		slots = append(slots, fmt.Sprintf("%02d:30", hour))
	}
	return slots
}

// AvailableSlots devuelve los turnos libres para una fecha, en orden
// ascendente. Si date viene vacío (el usuario todavía no eligió fecha),
// devuelve el set canónico completo.
//
// Un turno se considera ocupado si alguna reserva de esa fecha tiene
// exactamente ese HH:MM, sin importar el status: una cita cancelada
// sigue bloqueando su turno. La comparación es por string exacto; la
// duración no se considera (una cita de 90' a las 09:00 no bloquea
// las 09:30).
//
// Función pura: siempre devuelve un slice (posiblemente vacío si los 22
// turnos del día están tomados).
func AvailableSlots(date string, booked []Booking) []string {
	all := TimeSlots()
	if date == "" {
		return all
	}

	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		if b.Date == date {
			taken[b.Time] = struct{}{}
		}
	}

	free := make([]string, 0, len(all))
	for _, slot := range all {
		if _, ok := taken[slot]; !ok {
			free = append(free, slot)
		}
	}
	return free
}
