package schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// BookingSource provee la colección de citas vigente. El core nunca la
// busca por su cuenta: el caller (appointments) la inyecta.
type BookingSource interface {
	Bookings(ctx context.Context) ([]Booking, error)
}

func RegisterRoutes(r chi.Router, src BookingSource) {
	r.Route("/schedule", func(sr chi.Router) {
		sr.Get("/month", monthGridHandler())
		sr.Get("/slots", availableSlotsHandler(src))
	})
}

// monthGridResponse representa las celdas de la vista mensual.
// Las celdas nil son los espacios vacíos antes del día 1.
type monthGridResponse struct {
	Month string    `json:"month"` // YYYY-MM
	Cells []*string `json:"cells"` // null | YYYY-MM-DD
}

type slotsResponse struct {
	Date  string   `json:"date,omitempty"`
	Slots []string `json:"slots"`
}

// monthGridHandler godoc
// @Summary Grilla mensual de la agenda
// @Description Devuelve las celdas para renderizar el mes en una grilla de 7 columnas: placeholders null hasta el día de semana del día 1, y luego una celda por día (YYYY-MM-DD). Sin ?month usa el mes actual.
// @Tags schedule
// @Produce json
// @Param month query string false "Mes en formato YYYY-MM"
// @Success 200 {object} monthGridResponse
// @Failure 400 {string} string "month must be YYYY-MM"
// @Router /schedule/month [get]
func monthGridHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := time.Now()
		if m := strings.TrimSpace(r.URL.Query().Get("month")); m != "" {
			t, err := time.Parse("2006-01", m)
			if err != nil {
				http.Error(w, "month must be YYYY-MM", http.StatusBadRequest)
				return
			}
			ref = t
		}

		cells := BuildMonthGrid(ref)
		out := monthGridResponse{
			Month: ref.Format("2006-01"),
			Cells: make([]*string, 0, len(cells)),
		}
		for _, c := range cells {
			if c == nil {
				out.Cells = append(out.Cells, nil)
				continue
			}
			s := c.Format("2006-01-02")
			out.Cells = append(out.Cells, &s)
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// availableSlotsHandler godoc
// @Summary Turnos disponibles para una fecha
// @Description Devuelve los horarios libres (HH:MM) para la fecha indicada. Sin ?date devuelve los 22 turnos canónicos. Una lista vacía es un estado válido: el día está completo y el formulario debe bloquear el alta.
// @Tags schedule
// @Produce json
// @Param date query string false "Fecha en formato YYYY-MM-DD"
// @Success 200 {object} slotsResponse
// @Failure 400 {string} string "date must be YYYY-MM-DD"
// @Failure 500 {string} string "internal error"
// @Router /schedule/slots [get]
func availableSlotsHandler(src BookingSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := strings.TrimSpace(r.URL.Query().Get("date"))
		if date != "" {
			if _, err := time.Parse("2006-01-02", date); err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
		}

		var booked []Booking
		if date != "" {
			var err error
			booked, err = src.Bookings(r.Context())
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
		}

		writeJSON(w, http.StatusOK, slotsResponse{
			Date:  date,
			Slots: AvailableSlots(date, booked),
		})
	}
}

// writeJSON está duplicado intencionalmente en los handlers de cada módulo
// (ver nota en patients/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
