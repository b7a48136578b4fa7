package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"physio-agenda/internal/domain/patients"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, patientsSvc *patients.Service) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", createAppointmentHandler(svc, patientsSvc))
		ar.Get("/", listAppointmentsHandler(svc))

		ar.Get("/{appointmentID}", getAppointmentHandler(svc))
		ar.Patch("/{appointmentID}", updateAppointmentHandler(svc))
		ar.Delete("/{appointmentID}", deleteAppointmentHandler(svc))
	})
}

type createAppointmentRequest struct {
	PatientID string `json:"patient_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM, uno de los turnos canónicos
	Duration  int    `json:"duration"`
	Type      string `json:"type"`
	Status    string `json:"status" enums:"confirmada,pendiente,cancelada"`
	Notes     string `json:"notes"`
}

type updateAppointmentRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Duration *int    `json:"duration"`
	Type     *string `json:"type"`
	Status   *string `json:"status" enums:"confirmada,pendiente,cancelada"`
	Notes    *string `json:"notes"`
}

// appointmentResponse representa una cita devuelta por la API.
type appointmentResponse struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Duration    int       `json:"duration"`
	Type        string    `json:"type"`
	Status      Status    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// createAppointmentHandler godoc
// @Summary Crear cita
// @Description Crea una cita para un paciente existente. El horario tiene que ser uno de los 22 turnos canónicos y estar libre para esa fecha; un turno ocupado (incluso por una cita cancelada) devuelve 409. El nombre del paciente se copia a la cita al momento del alta.
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body createAppointmentRequest true "Datos de la cita; date YYYY-MM-DD, time HH:MM"
// @Success 201 {object} appointmentResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 404 {string} string "patient not found"
// @Failure 409 {string} string "slot already taken"
// @Router /appointments [post]
func createAppointmentHandler(svc *Service, patientsSvc *patients.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// La cita referencia al paciente por id y cachea su nombre actual.
		p, err := patientsSvc.GetByID(r.Context(), req.PatientID)
		if err != nil {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			PatientID:   p.ID,
			PatientName: p.Name,
			Date:        req.Date,
			Time:        req.Time,
			Duration:    req.Duration,
			Type:        req.Type,
			Status:      req.Status,
			Notes:       req.Notes,
		})
		if err != nil {
			writeAppointmentError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

// listAppointmentsHandler godoc
// @Summary Listar citas
// @Description Lista la agenda completa, o solo las citas de una fecha con ?date=YYYY-MM-DD.
// @Tags appointments
// @Produce json
// @Param date query string false "Fecha en formato YYYY-MM-DD"
// @Success 200 {array} appointmentResponse
// @Failure 400 {string} string "date must be YYYY-MM-DD"
// @Router /appointments [get]
func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("date"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func updateAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateAppointmentRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "appointmentID"), UpdateInput{
			Date:     req.Date,
			Time:     req.Time,
			Duration: req.Duration,
			Type:     req.Type,
			Status:   req.Status,
			Notes:    req.Notes,
		})
		if err != nil {
			writeAppointmentError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "appointmentID")); err != nil {
			writeAppointmentError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeAppointmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSlotTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "appointment not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:          a.ID,
		PatientID:   a.PatientID,
		PatientName: a.PatientName,
		Date:        a.Date,
		Time:        a.Time,
		Duration:    a.Duration,
		Type:        a.Type,
		Status:      a.Status,
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (ver nota en patients/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
