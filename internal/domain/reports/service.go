package reports

import (
	"context"
	"time"

	"physio-agenda/internal/domain/appointments"
	"physio-agenda/internal/domain/patients"
)

// PatientSource y AppointmentSource son las colecciones que los reportes
// reducen. Los services de patients y appointments las satisfacen.
type PatientSource interface {
	List(ctx context.Context, query string) ([]patients.Patient, error)
}

type AppointmentSource interface {
	List(ctx context.Context, date string) ([]appointments.Appointment, error)
}

type Service struct {
	patients PatientSource
	appts    AppointmentSource
	now      func() time.Time
}

func NewService(p PatientSource, a AppointmentSource) *Service {
	return &Service{
		patients: p,
		appts:    a,
		now:      time.Now,
	}
}

// Summary son los agregados de la vista de reportes. Reducciones simples
// sobre las dos colecciones completas; nada se cachea.
type Summary struct {
	TotalPatients      int `json:"total_patients"`
	ActivePatients     int `json:"active_patients"`
	FollowUpPatients   int `json:"followup_patients"`
	DischargedPatients int `json:"discharged_patients"`

	TotalAppointments     int `json:"total_appointments"`
	ConfirmedAppointments int `json:"confirmed_appointments"`
	PendingAppointments   int `json:"pending_appointments"`
	CancelledAppointments int `json:"cancelled_appointments"`

	TotalTreatments         int     `json:"total_treatments"`
	AvgTreatmentsPerPatient float64 `json:"avg_treatments_per_patient"`

	// RecoveryRate: pacientes con Alta sobre el total, en porcentaje.
	// AdherenceRate: citas confirmadas sobre el total, en porcentaje.
	RecoveryRate  float64 `json:"recovery_rate"`
	AdherenceRate float64 `json:"adherence_rate"`
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	pts, err := s.patients.List(ctx, "")
	if err != nil {
		return Summary{}, err
	}
	appts, err := s.appts.List(ctx, "")
	if err != nil {
		return Summary{}, err
	}

	var out Summary

	out.TotalPatients = len(pts)
	for _, p := range pts {
		switch p.Status {
		case patients.StatusActive:
			out.ActivePatients++
		case patients.StatusFollowUp:
			out.FollowUpPatients++
		case patients.StatusDischarged:
			out.DischargedPatients++
		}
		out.TotalTreatments += p.Treatments
	}

	out.TotalAppointments = len(appts)
	for _, a := range appts {
		switch a.Status {
		case appointments.StatusConfirmed:
			out.ConfirmedAppointments++
		case appointments.StatusPending:
			out.PendingAppointments++
		case appointments.StatusCancelled:
			out.CancelledAppointments++
		}
	}

	if out.TotalPatients > 0 {
		out.AvgTreatmentsPerPatient = float64(out.TotalTreatments) / float64(out.TotalPatients)
		out.RecoveryRate = float64(out.DischargedPatients) / float64(out.TotalPatients) * 100
	}
	if out.TotalAppointments > 0 {
		out.AdherenceRate = float64(out.ConfirmedAppointments) / float64(out.TotalAppointments) * 100
	}

	return out, nil
}

// DashboardStats son los contadores del tablero principal.
type DashboardStats struct {
	TotalPatients     int `json:"total_patients"`
	ActivePatients    int `json:"active_patients"`
	TodayAppointments int `json:"today_appointments"`
	WeeklyTreatments  int `json:"weekly_treatments"`
}

func (s *Service) Dashboard(ctx context.Context) (DashboardStats, error) {
	pts, err := s.patients.List(ctx, "")
	if err != nil {
		return DashboardStats{}, err
	}

	today := s.now().Format("2006-01-02")
	todayAppts, err := s.appts.List(ctx, today)
	if err != nil {
		return DashboardStats{}, err
	}

	var out DashboardStats
	out.TotalPatients = len(pts)
	for _, p := range pts {
		if p.Status == patients.StatusActive {
			out.ActivePatients++
		}
		out.WeeklyTreatments += p.Treatments
	}
	out.TodayAppointments = len(todayAppts)

	return out, nil
}
