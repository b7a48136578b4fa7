package patients

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/patients", func(pr chi.Router) {
		pr.Post("/", createPatientHandler(svc))
		pr.Get("/", listPatientsHandler(svc))

		pr.Get("/{patientID}", getPatientHandler(svc))
		pr.Patch("/{patientID}", updatePatientHandler(svc))
		pr.Delete("/{patientID}", deletePatientHandler(svc))

		// Historia clínica (embebida en la ficha)
		pr.Post("/{patientID}/history", addHistoryHandler(svc))
	})
}

type createPatientRequest struct {
	Name      string `json:"name"`
	Cedula    string `json:"cedula"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD opcional
	Gender    string `json:"gender"`
	Notes     string `json:"notes"`
}

type updatePatientRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name      *string `json:"name"`
	Cedula    *string `json:"cedula"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	BirthDate *string `json:"birth_date"` // YYYY-MM-DD; "" limpia
	Gender    *string `json:"gender"`
	Status    *string `json:"status" enums:"Activo,Seguimiento,Alta"`
	Notes     *string `json:"notes"`
}

type addHistoryRequest struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Treatment string `json:"treatment"`
	Notes     string `json:"notes"`
	Evolution string `json:"evolution"`
}

type historyEntryResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Treatment string `json:"treatment"`
	Notes     string `json:"notes"`
	Evolution string `json:"evolution"`
}

// patientResponse representa la ficha del paciente devuelta por la API.
type patientResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Cedula         string                 `json:"cedula"`
	Phone          string                 `json:"phone"`
	Email          string                 `json:"email"`
	Address        string                 `json:"address,omitempty"`
	BirthDate      *time.Time             `json:"birth_date,omitempty"`
	Gender         Gender                 `json:"gender,omitempty"`
	Treatments     int                    `json:"treatments"`
	Status         Status                 `json:"status"`
	Notes          string                 `json:"notes,omitempty"`
	MedicalHistory []historyEntryResponse `json:"medical_history"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// createPatientHandler godoc
// @Summary Registrar paciente
// @Description Crea una ficha de paciente nueva. Arranca con status Activo y contador de tratamientos en cero.
// @Tags patients
// @Accept json
// @Produce json
// @Param payload body createPatientRequest true "Datos del paciente; birth_date en formato YYYY-MM-DD"
// @Success 201 {object} patientResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Router /patients [post]
func createPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse("2006-01-02", req.BirthDate)
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bd = &t
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:      req.Name,
			Cedula:    req.Cedula,
			Phone:     req.Phone,
			Email:     req.Email,
			Address:   req.Address,
			BirthDate: bd,
			Gender:    req.Gender,
			Notes:     req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPatientResponse(p))
	}
}

// listPatientsHandler godoc
// @Summary Listar pacientes
// @Description Lista las fichas, opcionalmente filtradas con ?q= por nombre, cédula o email (substring, case-insensitive).
// @Tags patients
// @Produce json
// @Param q query string false "Filtro de búsqueda"
// @Success 200 {array} patientResponse
// @Router /patients [get]
func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]patientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPatientResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "patientID"))
		if err != nil {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPatientResponse(p))
	}
}

func updatePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updatePatientRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.UpdateProfile(r.Context(), chi.URLParam(r, "patientID"), UpdateInput{
			Name:      req.Name,
			Cedula:    req.Cedula,
			Phone:     req.Phone,
			Email:     req.Email,
			Address:   req.Address,
			BirthDate: req.BirthDate,
			Gender:    req.Gender,
			Status:    req.Status,
			Notes:     req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "patient not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPatientResponse(updated))
	}
}

func deletePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "patientID")); err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "patient not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// addHistoryHandler godoc
// @Summary Agregar entrada de historia clínica
// @Description Agrega una entrada a la historia clínica embebida del paciente e incrementa su contador de tratamientos.
// @Tags patients
// @Accept json
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param payload body addHistoryRequest true "Entrada; date en formato YYYY-MM-DD"
// @Success 201 {object} patientResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 404 {string} string "patient not found"
// @Router /patients/{patientID}/history [post]
func addHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addHistoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.AddHistory(r.Context(), chi.URLParam(r, "patientID"), HistoryInput{
			Date:      req.Date,
			Treatment: req.Treatment,
			Notes:     req.Notes,
			Evolution: req.Evolution,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "patient not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toPatientResponse(p))
	}
}

func toPatientResponse(p Patient) patientResponse {
	history := make([]historyEntryResponse, 0, len(p.MedicalHistory))
	for _, h := range p.MedicalHistory {
		history = append(history, historyEntryResponse{
			ID:        h.ID,
			Date:      h.Date,
			Treatment: h.Treatment,
			Notes:     h.Notes,
			Evolution: h.Evolution,
		})
	}

	return patientResponse{
		ID:             p.ID,
		Name:           p.Name,
		Cedula:         p.Cedula,
		Phone:          p.Phone,
		Email:          p.Email,
		Address:        p.Address,
		BirthDate:      p.BirthDate,
		Gender:         p.Gender,
		Treatments:     p.Treatments,
		Status:         p.Status,
		Notes:          p.Notes,
		MedicalHistory: history,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (patients/appointments/schedule) para evitar crear helpers compartidos
// demasiado pronto. Si se repite en más módulos, recién conviene extraerlo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
