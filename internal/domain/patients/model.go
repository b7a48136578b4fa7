package patients

import "time"

// Status define el estado clínico del paciente.
// @Enum Activo, Seguimiento, Alta
type Status string

const (
	StatusActive     Status = "Activo"
	StatusFollowUp   Status = "Seguimiento"
	StatusDischarged Status = "Alta"
)

// Gender define el género del paciente.
// @Enum Masculino, Femenino, Otro
type Gender string

const (
	GenderMale   Gender = "Masculino"
	GenderFemale Gender = "Femenino"
	GenderOther  Gender = "Otro"
)

// Patient representa la ficha de un paciente del consultorio.
//
// Treatments es un contador desnormalizado: se incrementa al registrar
// una entrada de historia clínica (ver Service.AddHistory), no se deriva
// de la lista en cada lectura.
type Patient struct {
	ID string

	Name   string
	Cedula string
	Phone  string
	Email  string

	Address   string
	BirthDate *time.Time
	Gender    Gender // Masculino, Femenino, Otro (opcional)

	Treatments int
	Status     Status
	Notes      string

	// Historia clínica embebida, en orden de registro. Las entradas viven
	// únicamente dentro del paciente; nunca se referencian por separado.
	MedicalHistory []HistoryEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HistoryEntry es una entrada de la historia clínica del paciente.
type HistoryEntry struct {
	ID        string
	Date      string // YYYY-MM-DD
	Treatment string
	Notes     string
	Evolution string
}
