package appointments

import "time"

// Status define el estado de la cita.
// @Enum confirmada, pendiente, cancelada
type Status string

const (
	StatusConfirmed Status = "confirmada"
	StatusPending   Status = "pendiente"
	StatusCancelled Status = "cancelada"
)

// Tipos de sesión que ofrece el consultorio. El campo Type de la cita es
// un label libre; este set es el que muestra el formulario.
const (
	TypeManualTherapy     = "Terapia manual"
	TypeRehabilitation    = "Rehabilitación"
	TypeInitialAssessment = "Evaluación inicial"
	TypeExercises         = "Ejercicios"
)

// Appointment representa una cita de la agenda.
//
// PatientName es una copia point-in-time de Patient.Name tomada al crear
// la cita: si el paciente se renombra después, la copia queda desfasada.
// Es una desnormalización deliberada para listar la agenda sin joins.
type Appointment struct {
	ID string

	PatientID   string
	PatientName string

	Date     string // YYYY-MM-DD (sin componente horario)
	Time     string // HH:MM, 24h
	Duration int    // minutos

	Type   string
	Status Status
	Notes  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
