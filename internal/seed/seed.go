// Package seed trae el set de datos de demo del consultorio. Se usa para
// inicializar los repos en modo dev cuando todavía no hay datos reales.
package seed

import (
	"time"

	"physio-agenda/internal/domain/appointments"
	"physio-agenda/internal/domain/patients"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func ts(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Patients() []patients.Patient {
	return []patients.Patient{
		{
			ID:         "1",
			Name:       "María González",
			Cedula:     "12345678",
			Phone:      "+1234567890",
			Email:      "maria@email.com",
			Address:    "Calle Principal 123",
			BirthDate:  date(1985, time.March, 15),
			Gender:     patients.GenderFemale,
			Treatments: 8,
			Status:     patients.StatusActive,
			Notes:      "Paciente con lesión de rodilla",
			MedicalHistory: []patients.HistoryEntry{
				{
					ID:        "1",
					Date:      "2024-01-15",
					Treatment: "Terapia manual",
					Notes:     "Primera sesión de evaluación",
					Evolution: "Buena respuesta inicial",
				},
			},
			CreatedAt: ts(2024, time.January, 1),
			UpdatedAt: ts(2024, time.January, 15),
		},
		{
			ID:             "2",
			Name:           "Carlos Rodríguez",
			Cedula:         "87654321",
			Phone:          "+0987654321",
			Email:          "carlos@email.com",
			Address:        "Avenida Central 456",
			BirthDate:      date(1978, time.July, 22),
			Gender:         patients.GenderMale,
			Treatments:     12,
			Status:         patients.StatusFollowUp,
			Notes:          "Rehabilitación post-operatoria",
			MedicalHistory: []patients.HistoryEntry{},
			CreatedAt:      ts(2023, time.December, 15),
			UpdatedAt:      ts(2024, time.January, 10),
		},
		{
			ID:             "3",
			Name:           "Ana Martínez",
			Cedula:         "11223344",
			Phone:          "+1122334455",
			Email:          "ana@email.com",
			Address:        "Plaza Mayor 789",
			BirthDate:      date(1990, time.November, 8),
			Gender:         patients.GenderFemale,
			Treatments:     5,
			Status:         patients.StatusDischarged,
			Notes:          "Tratamiento completado exitosamente",
			MedicalHistory: []patients.HistoryEntry{},
			CreatedAt:      ts(2023, time.November, 1),
			UpdatedAt:      ts(2024, time.January, 5),
		},
	}
}

func Appointments() []appointments.Appointment {
	return []appointments.Appointment{
		{
			ID:          "1",
			PatientID:   "1",
			PatientName: "María González",
			Date:        "2024-01-20",
			Time:        "10:00",
			Duration:    60,
			Type:        appointments.TypeManualTherapy,
			Notes:       "Sesión de seguimiento",
			Status:      appointments.StatusConfirmed,
			CreatedAt:   ts(2024, time.January, 15),
			UpdatedAt:   ts(2024, time.January, 15),
		},
		{
			ID:          "2",
			PatientID:   "2",
			PatientName: "Carlos Rodríguez",
			Date:        "2024-01-20",
			Time:        "14:00",
			Duration:    45,
			Type:        appointments.TypeRehabilitation,
			Notes:       "Control post-operatorio",
			Status:      appointments.StatusPending,
			CreatedAt:   ts(2024, time.January, 15),
			UpdatedAt:   ts(2024, time.January, 15),
		},
	}
}
